package model

// RecipientResult records one send attempt for one recipient.
type RecipientResult struct {
	Recipient    string `json:"recipient"`               // raw configured number
	Number       string `json:"number,omitempty"`        // E.164 form, when parseable
	Sent         bool   `json:"sent"`
	MediaDropped bool   `json:"media_dropped,omitempty"` // text-only fallback was used
	Error        string `json:"error,omitempty"`
}

// DispatchOutcome aggregates the per-recipient results of one routed event.
// Attempted means every recipient got its send attempt, not that every send
// succeeded.
type DispatchOutcome struct {
	Event      string            `json:"event"`
	Attempted  bool              `json:"attempted"`
	MediaURL   string            `json:"media_url,omitempty"`
	Error      string            `json:"error,omitempty"`
	Recipients []RecipientResult `json:"recipients,omitempty"`
}

// Failures counts recipients whose send attempt did not succeed.
func (o DispatchOutcome) Failures() int {
	n := 0
	for _, r := range o.Recipients {
		if !r.Sent {
			n++
		}
	}

	return n
}
