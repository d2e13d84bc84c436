// Package sms provides a simple client for sending text messages via Twilio.
//
// It allows creating a client with account credentials and sending messages,
// optionally with an attached media URL, to E.164-formatted numbers.
package sms

import (
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client represents a Twilio client used to send SMS notifications.
type Client struct {
	api *twilio.RestClient
}

// NewClient creates a new Client authenticated with the given account SID and
// auth token. The timeout bounds every gateway round trip.
func NewClient(accountSID, authToken string, timeout time.Duration) *Client {
	base := &twilioclient.Client{
		Credentials: twilioclient.NewCredentials(accountSID, authToken),
	}
	base.SetTimeout(timeout)

	return &Client{
		api: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
			Client:   base,
		}),
	}
}

// Send submits one message to the gateway. Both numbers must already be in
// E.164 form. A non-empty mediaURL is attached as message media; an empty one
// sends plain text. It returns an error if the gateway rejects the message or
// the request fails.
func (c *Client) Send(to, from, body, mediaURL string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	if mediaURL != "" {
		params.SetMediaUrl([]string{mediaURL})
	}

	if _, err := c.api.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}
