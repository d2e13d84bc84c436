// Package router matches incoming host events against configured rules and
// drives the notification pipeline: snapshot capture, transform, upload,
// message rendering, dispatch. Every external failure along the way degrades
// the notification instead of aborting it; the router never returns an error
// to the host.
package router

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/print-sms-notifier/internal/compose"
	"github.com/aliskhannn/print-sms-notifier/internal/config"
	"github.com/aliskhannn/print-sms-notifier/internal/model"
	"github.com/aliskhannn/print-sms-notifier/internal/snapshot"
)

//go:generate mockgen -source=router.go -destination=../mocks/router/mock.go -package=mocks

type snapshotCapturer interface {
	Capture(ctx context.Context, sourceURL string) (string, error)
}

type imageTransformer interface {
	Transform(ctx context.Context, path string)
}

type imageUploader interface {
	Upload(ctx context.Context, filePath, suggestedName string) (string, error)
}

type messageDispatcher interface {
	Dispatch(message, mediaURL string) model.DispatchOutcome
}

var filenameScrubRe = regexp.MustCompile(`[^\w\-.]`)

// Router orchestrates one notification per matched event.
type Router struct {
	enabled     bool
	printerName string
	snapshotURL string
	rules       []model.EventRule

	capturer    snapshotCapturer
	transformer imageTransformer
	uploader    imageUploader
	dispatcher  messageDispatcher

	now func() time.Time
}

// New creates a Router over the configured event rules.
func New(cfg *config.Config, c snapshotCapturer, t imageTransformer, u imageUploader, d messageDispatcher) *Router {
	return &Router{
		enabled:     cfg.Enabled,
		printerName: cfg.PrinterName,
		snapshotURL: cfg.Webcam.SnapshotURL,
		rules:       cfg.Events,
		capturer:    c,
		transformer: t,
		uploader:    u,
		dispatcher:  d,
		now:         time.Now,
	}
}

// Route processes one host event. An unmatched event name or a disabled
// notifier is a silent no-op. A matched rule produces exactly one attempted
// send sequence; snapshot and upload failures downgrade to a text-only
// notification, while a template rendering failure skips the send entirely.
func (r *Router) Route(ctx context.Context, event string, payload model.Payload) model.DispatchOutcome {
	out := model.DispatchOutcome{Event: event}

	if !r.enabled {
		zlog.Logger.Info().Str("event", event).Msg("notifier disabled, ignoring event")
		return out
	}

	rule, ok := r.match(event)
	if !ok {
		zlog.Logger.Info().Str("event", event).Msg("no rule for event, ignoring")
		return out
	}

	var mediaURL string
	if rule.RequiresPicture {
		mediaURL = r.captureAndUpload(ctx, payload)
	}

	message, err := compose.Render(rule.Template, r.fields(payload))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("event", event).Msg("failed to render message, skipping notification")
		out.Error = err.Error()
		return out
	}

	out = r.dispatcher.Dispatch(message, mediaURL)
	out.Event = event

	return out
}

func (r *Router) match(event string) (model.EventRule, bool) {
	for _, rule := range r.rules {
		if rule.Name == event {
			return rule, true
		}
	}

	return model.EventRule{}, false
}

// captureAndUpload runs the picture pipeline. Any failure returns an empty
// URL so the text portion of the notification still goes out.
func (r *Router) captureAndUpload(ctx context.Context, payload model.Payload) string {
	path, err := r.capturer.Capture(ctx, r.snapshotURL)
	if err != nil {
		if errors.Is(err, snapshot.ErrNoSource) {
			zlog.Logger.Info().Msg("no snapshot url configured, sending only a note")
		} else {
			zlog.Logger.Warn().Err(err).Msg("failed to fetch snapshot from webcam, sending only a note")
		}
		return ""
	}
	defer os.Remove(path)

	r.transformer.Transform(ctx, path)

	url, err := r.uploader.Upload(ctx, path, r.suggestedName(payload))
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to upload snapshot, sending only a note")
		return ""
	}

	if url != "" {
		zlog.Logger.Info().Str("url", url).Msg("snapshot uploaded")
	}

	return url
}

// suggestedName builds a stable object name from the job name and the event
// time, restricted to filename-safe characters.
func (r *Router) suggestedName(payload model.Payload) string {
	job, _ := payload["name"].(string)
	if job == "" {
		job = "snapshot"
	}

	name := fmt.Sprintf("%s_%s.jpg", job, r.now().Format("2006-01-02_15-04-05"))

	return filenameScrubRe.ReplaceAllString(name, "_")
}

// fields flattens the event payload into template fields. Pre-formatted
// string values pass through untouched; a numeric elapsed-seconds value is
// formatted to H:MM:SS before rendering since templates never format.
func (r *Router) fields(payload model.Payload) map[string]string {
	fields := make(map[string]string, len(payload)+3)

	for k, v := range payload {
		fields[k] = stringify(v)
	}

	if secs, ok := seconds(payload["time"]); ok {
		fields["time"] = model.FormatElapsed(time.Duration(secs * float64(time.Second)))
	}
	if _, ok := fields["elapsed_time"]; !ok {
		if t, ok := fields["time"]; ok {
			fields["elapsed_time"] = t
		}
	}

	if file, ok := payload["file"].(string); ok && file != "" {
		fields["filename"] = filepath.Base(file)
	}

	fields["printer_name"] = r.printerName

	return fields
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func seconds(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
