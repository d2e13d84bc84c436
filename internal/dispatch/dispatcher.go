// Package dispatch fans one rendered message out to every configured
// recipient. Recipients are independent: a malformed number or a gateway
// failure affects only its own entry, never the batch.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/print-sms-notifier/internal/model"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatch/mock.go -package=mocks

type messageGateway interface {
	Send(to, from, body, mediaURL string) error
}

// Dispatcher sends notifications through an SMS gateway.
type Dispatcher struct {
	gateway    messageGateway
	recipients string // comma-joined raw numbers from config
	from       string // raw sender number from config
	region     string // default region for parsing national numbers
}

// New creates a Dispatcher for the configured recipients and sender.
func New(gateway messageGateway, recipients, from, region string) *Dispatcher {
	return &Dispatcher{
		gateway:    gateway,
		recipients: recipients,
		from:       from,
		region:     region,
	}
}

// Dispatch sends message to every non-empty recipient entry, attaching
// mediaURL when present. The outcome is "attempted" once every recipient got
// its try, regardless of individual failures. When a media send fails for a
// recipient, one text-only send is attempted for that recipient before its
// failure is recorded.
func (d *Dispatcher) Dispatch(message, mediaURL string) model.DispatchOutcome {
	out := model.DispatchOutcome{MediaURL: mediaURL}

	from, err := normalize(d.from, d.region)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("from", d.from).Msg("invalid sender number, nothing sent")
		out.Error = fmt.Sprintf("invalid sender number: %v", err)
		return out
	}

	for _, raw := range strings.Split(d.recipients, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		out.Recipients = append(out.Recipients, d.send(raw, from, message, mediaURL))
	}

	out.Attempted = true

	return out
}

func (d *Dispatcher) send(raw, from, message, mediaURL string) model.RecipientResult {
	res := model.RecipientResult{Recipient: raw}

	to, err := normalize(raw, d.region)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("recipient", raw).Msg("invalid recipient number, skipping")
		res.Error = err.Error()
		return res
	}
	res.Number = to

	err = d.gateway.Send(to, from, message, mediaURL)
	if err == nil {
		zlog.Logger.Info().Str("to", to).Msg("print notification sent")
		res.Sent = true
		return res
	}

	if mediaURL != "" {
		zlog.Logger.Warn().Err(err).Str("to", to).Msg("could not send text+image notification, will try without image")

		if err2 := d.gateway.Send(to, from, message, ""); err2 == nil {
			zlog.Logger.Info().Str("to", to).Msg("text-only print notification sent")
			res.Sent = true
			res.MediaDropped = true
			return res
		}
	}

	zlog.Logger.Error().Err(err).Str("to", to).Msg("SMS notification error")
	res.Error = err.Error()

	return res
}

// normalize parses raw in the given default region and formats it as E.164.
func normalize(raw, region string) (string, error) {
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("parse number %q: %w", raw, err)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
