package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidInterval = errors.New("invalid interval")

// TimeSlot is a half-open interval [start, end). Touching endpoints do not
// overlap, so back-to-back bookings on the same slot are legal.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidInterval
	}
	return TimeSlot{start: start.UTC(), end: end.UTC()}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.end)
}

// WithEnd widens (or narrows) the slot; the order invariant still holds.
func (ts TimeSlot) WithEnd(end time.Time) (TimeSlot, error) {
	return NewTimeSlot(ts.start, end)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// Money is an amount in the smallest currency unit.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromDecimal rounds a currency-unit amount half-up to cents.
// decimal.Round rounds half away from zero, which is half-up for the
// non-negative amounts fees and refunds are made of.
func MoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{cents: amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(m.cents).Div(decimal.NewFromInt(100))
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// MulFraction scales the amount by a fraction (e.g. a refund percentage),
// rounding half-up to the cent.
func (m Money) MulFraction(fraction decimal.Decimal) Money {
	return Money{cents: decimal.NewFromInt(m.cents).Mul(fraction).Round(0).IntPart()}
}
