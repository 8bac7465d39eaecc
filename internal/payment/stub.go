package payment

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// StubGateway approves everything, for local runs and tests. Outcomes can
// be flipped to FAILED to exercise rollback paths.
type StubGateway struct {
	logger      *slog.Logger
	failCharges atomic.Bool
	seq         atomic.Int64
}

func NewStubGateway(logger *slog.Logger) *StubGateway {
	return &StubGateway{logger: logger}
}

// FailCharges makes every subsequent Charge return FAILED.
func (g *StubGateway) FailCharges(fail bool) {
	g.failCharges.Store(fail)
}

func (g *StubGateway) Charge(_ context.Context, req Request) (Result, error) {
	txn := fmt.Sprintf("stub-charge-%d", g.seq.Add(1))
	if g.failCharges.Load() {
		g.logger.Warn("stub gateway declining charge", "reservation_id", req.ReservationID, "amount_cents", req.AmountCents)
		return Result{Outcome: OutcomeFailed, GatewayTxnID: txn}, nil
	}
	g.logger.Info("stub gateway charge", "reservation_id", req.ReservationID, "amount_cents", req.AmountCents, "txn", txn)
	return Result{Outcome: OutcomeSuccess, GatewayTxnID: txn}, nil
}

func (g *StubGateway) Refund(_ context.Context, req Request) (Result, error) {
	txn := fmt.Sprintf("stub-refund-%d", g.seq.Add(1))
	g.logger.Info("stub gateway refund", "reservation_id", req.ReservationID, "amount_cents", req.AmountCents, "txn", txn)
	return Result{Outcome: OutcomeSuccess, GatewayTxnID: txn}, nil
}
