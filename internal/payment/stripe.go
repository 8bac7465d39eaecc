package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/refund"
)

// StripeGateway charges through PaymentIntents and refunds against the
// intent recorded at charge time.
type StripeGateway struct {
	currency string
}

func NewStripeGateway(secretKey, currency string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{currency: currency}
}

func (g *StripeGateway) Charge(_ context.Context, req Request) (Result, error) {
	currency := req.Currency
	if currency == "" {
		currency = g.currency
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountCents),
		Currency: stripe.String(currency),
		Confirm:  stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
		Description: stripe.String(req.Description),
	}
	params.AddMetadata("reservation_id", req.ReservationID.String())

	pi, err := paymentintent.New(params)
	if err != nil {
		return Result{Outcome: OutcomeFailed}, err
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return Result{Outcome: OutcomeFailed, GatewayTxnID: pi.ID}, nil
	}
	return Result{Outcome: OutcomeSuccess, GatewayTxnID: pi.ID}, nil
}

func (g *StripeGateway) Refund(_ context.Context, req Request) (Result, error) {
	if req.Reference == "" {
		return Result{Outcome: OutcomeFailed}, fmt.Errorf("refund for reservation %s: missing payment intent reference", req.ReservationID)
	}
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.Reference),
		Amount:        stripe.Int64(req.AmountCents),
	}
	r, err := refund.New(params)
	if err != nil {
		return Result{Outcome: OutcomeFailed}, err
	}
	return Result{Outcome: OutcomeSuccess, GatewayTxnID: r.ID}, nil
}
