package request

import "time"

// GateScanRequest is what the gate scanner posts: the QR token plus the
// scan timestamp. A missing timestamp means "now" at the server.
type GateScanRequest struct {
	Token      string     `json:"token" binding:"required"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}
