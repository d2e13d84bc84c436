package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/print-sms-notifier/internal/config"
	"github.com/aliskhannn/print-sms-notifier/internal/dispatch"
	"github.com/aliskhannn/print-sms-notifier/internal/model"
	"github.com/aliskhannn/print-sms-notifier/internal/router"
	"github.com/aliskhannn/print-sms-notifier/internal/snapshot"
	"github.com/aliskhannn/print-sms-notifier/internal/transform"
	"github.com/aliskhannn/print-sms-notifier/internal/upload"
	"github.com/aliskhannn/print-sms-notifier/pkg/sms"
)

// hostEvent is one printer event as delivered by the host application, one
// JSON object per line on stdin.
type hostEvent struct {
	Event   string        `json:"event"`
	Payload model.Payload `json:"payload"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	val := validator.New()
	if err := val.Struct(cfg); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("invalid config")
	}

	gateway := sms.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.Timeout)
	acquirer := snapshot.NewAcquirer(cfg.Webcam.FetchTimeout, cfg.Webcam.Retry)
	transformer := transform.New(cfg.Webcam.FFmpegPath, transform.Options{
		FlipH:       cfg.Webcam.FlipH,
		FlipV:       cfg.Webcam.FlipV,
		Rotate90:    cfg.Webcam.Rotate90,
		PixelFormat: cfg.Webcam.PixelFormat,
	}, cfg.Webcam.TransformTimeout)
	uploader := upload.New(cfg.Upload)
	dispatcher := dispatch.New(gateway, cfg.Recipients, cfg.From, cfg.Region)

	rtr := router.New(cfg, acquirer, transformer, uploader, dispatcher)

	zlog.Logger.Info().Str("printer", cfg.PrinterName).Int("rules", len(cfg.Events)).Msg("notifier started, reading host events")

	done := make(chan struct{})

	go func() {
		defer close(done)

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}

			var ev hostEvent
			if err := json.Unmarshal(line, &ev); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to decode host event")
				continue
			}

			out := rtr.Route(ctx, ev.Event, ev.Payload)

			zlog.Logger.Info().
				Str("event", out.Event).
				Bool("attempted", out.Attempted).
				Int("recipients", len(out.Recipients)).
				Int("failures", out.Failures()).
				Msg("event processed")
		}

		if err := scanner.Err(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to read host events")
		}
	}()

	select {
	case <-ctx.Done():
		zlog.Logger.Info().Msg("shutdown signal received")
	case <-done:
		zlog.Logger.Info().Msg("host event stream closed")
	}
}
