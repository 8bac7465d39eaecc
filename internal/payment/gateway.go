// Package payment models the external payment sink. The core only needs
// charge/refund outcomes; settlement details belong to the provider.
package payment

import (
	"context"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailed  Outcome = "FAILED"
)

type Request struct {
	ReservationID uuid.UUID
	AmountCents   int64
	Currency      string
	Description   string
	// Reference carries the original charge's gateway transaction id when
	// requesting a refund.
	Reference string
}

type Result struct {
	Outcome      Outcome
	GatewayTxnID string
}

// Gateway is the payment sink port. Implementations may block; the pending
// hold's expiry bounds how long a slot stays provisionally locked while a
// charge is outstanding.
type Gateway interface {
	Charge(ctx context.Context, req Request) (Result, error)
	Refund(ctx context.Context, req Request) (Result, error)
}
