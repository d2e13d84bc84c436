package model

import (
	"fmt"
	"time"
)

// EventRule maps a host event name to a message template and a flag saying
// whether a webcam picture should accompany the notification. Rules are loaded
// from configuration and never mutated during a dispatch.
type EventRule struct {
	Name            string `mapstructure:"name" json:"name"`
	Template        string `mapstructure:"template" json:"template"`
	RequiresPicture bool   `mapstructure:"requires_picture" json:"requires_picture"`
}

// Payload carries the named fields of a single host event, e.g. job filename,
// elapsed seconds, event-specific extras. Supplied by the host per event.
type Payload map[string]any

// FormatElapsed renders a duration as H:MM:SS, the form expected inside
// message templates (e.g. "1:02:03").
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, total/60%60, total%60)
}
