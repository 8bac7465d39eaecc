// Package pricing computes reservation fees. Quote is pure: the same
// interval, rates and rule snapshot always produce the same fee, so every
// charge is reproducible for auditing.
package pricing

import (
	"sort"
	"time"

	"parkcore/internal/domain/booking"

	"github.com/shopspring/decimal"
)

var ErrInvalidInterval = booking.ErrInvalidInterval

const day = 24 * time.Hour

var (
	hundred     = decimal.NewFromInt(100)
	oneHourSecs = decimal.NewFromInt(3600)
)

// Segment is one rule-scoped sub-interval of a quote, kept for audit
// breakdowns.
type Segment struct {
	Start      time.Time
	End        time.Time
	RuleID     string // empty when the base rate applied
	Multiplier decimal.Decimal
	Amount     decimal.Decimal // currency units, unrounded
}

type Quote struct {
	Fee      booking.Money
	DayUnits int64
	Segments []Segment
}

// Compute prices the interval [start, end). The interval is cut at every
// rule-window boundary; each sub-interval is charged at the base hourly
// rate times its winning rule's multiplier. Stays of 24h or more charge
// full-day units at the daily rate (never rule-multiplied) and price only
// the remainder hourly. The total is rounded half-up to the cent.
func Compute(start, end time.Time, hourlyRateCents, dailyRateCents int64, rules []Rule) (*Quote, error) {
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}
	start, end = start.UTC(), end.UTC()

	q := &Quote{}
	total := decimal.Zero

	if end.Sub(start) >= day {
		q.DayUnits = int64(end.Sub(start) / day)
		dailyRate := decimal.NewFromInt(dailyRateCents).Div(hundred)
		total = dailyRate.Mul(decimal.NewFromInt(q.DayUnits))
		start = start.Add(time.Duration(q.DayUnits) * day)
	}

	if end.After(start) {
		hourlyRate := decimal.NewFromInt(hourlyRateCents).Div(hundred)
		for _, seg := range cut(start, end, rules) {
			multiplier := decimal.NewFromInt(1)
			ruleID := ""
			if winner := Resolve(rules, seg.from); winner != nil {
				multiplier = winner.Multiplier
				ruleID = winner.ID.String()
			}
			hours := decimal.NewFromInt(int64(seg.to.Sub(seg.from) / time.Second)).Div(oneHourSecs)
			amount := hourlyRate.Mul(multiplier).Mul(hours)
			total = total.Add(amount)
			q.Segments = append(q.Segments, Segment{
				Start:      seg.from,
				End:        seg.to,
				RuleID:     ruleID,
				Multiplier: multiplier,
				Amount:     amount,
			})
		}
	}

	q.Fee = booking.MoneyFromDecimal(total)
	return q, nil
}

type span struct {
	from, to time.Time
}

// cut splits [start, end) at every boundary where an applicable rule window
// opens or closes, so each returned span has a single winning rule.
func cut(start, end time.Time, rules []Rule) []span {
	points := map[time.Time]struct{}{start: {}, end: {}}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	for ; dayStart.Before(end); dayStart = dayStart.Add(day) {
		for _, r := range rules {
			if r.DayOfWeek != nil && *r.DayOfWeek != weekdayMondayBased(dayStart) {
				continue
			}
			for _, minute := range [2]int{r.StartMinute, r.EndMinute} {
				b := dayStart.Add(time.Duration(minute) * time.Minute)
				if b.After(start) && b.Before(end) {
					points[b] = struct{}{}
				}
			}
		}
	}

	boundaries := make([]time.Time, 0, len(points))
	for p := range points {
		boundaries = append(boundaries, p)
	}
	sort.Slice(boundaries, func(i, j int) bool { return boundaries[i].Before(boundaries[j]) })

	spans := make([]span, 0, len(boundaries)-1)
	for i := 0; i+1 < len(boundaries); i++ {
		spans = append(spans, span{from: boundaries[i], to: boundaries[i+1]})
	}
	return spans
}
