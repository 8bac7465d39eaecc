//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"parkcore/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-06 is a Friday (4 in Monday-based numbering).
var friday = time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func eveningRule(t *testing.T, multiplier string) pricing.Rule {
	t.Helper()
	dow := 4
	return pricing.Rule{
		ID:          uuid.New(),
		DayOfWeek:   &dow,
		StartMinute: 18 * 60,
		EndMinute:   22 * 60,
		Multiplier:  mustDecimal(t, multiplier),
		Priority:    10,
	}
}

func TestCompute(t *testing.T) {
	t.Run("plain hourly", func(t *testing.T) {
		q, err := pricing.Compute(friday.Add(10*time.Hour), friday.Add(13*time.Hour), 500, 4000, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(1500), q.Fee.Cents())
		assert.Equal(t, int64(0), q.DayUnits)
		require.Len(t, q.Segments, 1)
		assert.Empty(t, q.Segments[0].RuleID)
		assert.Equal(t, "15.00", q.Segments[0].Amount.StringFixed(2))
	})

	t.Run("fractional hours", func(t *testing.T) {
		q, err := pricing.Compute(friday.Add(10*time.Hour), friday.Add(10*time.Hour+90*time.Minute), 100, 1000, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(150), q.Fee.Cents())
	})

	t.Run("rounds half-up to the cent", func(t *testing.T) {
		// 30 minutes at 25 cents/hour is 12.5 cents.
		q, err := pricing.Compute(friday.Add(10*time.Hour), friday.Add(10*time.Hour+30*time.Minute), 25, 1000, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(13), q.Fee.Cents())
	})

	t.Run("rule window splits the interval", func(t *testing.T) {
		rule := eveningRule(t, "1.5")
		q, err := pricing.Compute(friday.Add(17*time.Hour), friday.Add(21*time.Hour), 100, 1000, []pricing.Rule{rule})
		require.NoError(t, err)

		// 1h at base + 3h at 1.5x of $1/h.
		assert.Equal(t, int64(550), q.Fee.Cents())
		require.Len(t, q.Segments, 2)

		assert.Empty(t, q.Segments[0].RuleID)
		assert.Equal(t, friday.Add(17*time.Hour), q.Segments[0].Start)
		assert.Equal(t, friday.Add(18*time.Hour), q.Segments[0].End)
		assert.Equal(t, "1.00", q.Segments[0].Amount.StringFixed(2))

		assert.Equal(t, rule.ID.String(), q.Segments[1].RuleID)
		assert.Equal(t, friday.Add(18*time.Hour), q.Segments[1].Start)
		assert.Equal(t, friday.Add(21*time.Hour), q.Segments[1].End)
		assert.Equal(t, "4.50", q.Segments[1].Amount.StringFixed(2))
	})

	t.Run("day-of-week rule stops at midnight", func(t *testing.T) {
		dow := 4
		rule := pricing.Rule{
			ID:          uuid.New(),
			DayOfWeek:   &dow,
			StartMinute: 22 * 60,
			EndMinute:   24 * 60,
			Multiplier:  mustDecimal(t, "2"),
			Priority:    1,
		}
		q, err := pricing.Compute(friday.Add(23*time.Hour), friday.Add(25*time.Hour), 100, 1000, []pricing.Rule{rule})
		require.NoError(t, err)

		// Friday 23:00-24:00 doubled, Saturday 00:00-01:00 at base.
		assert.Equal(t, int64(300), q.Fee.Cents())
		require.Len(t, q.Segments, 2)
		assert.Equal(t, rule.ID.String(), q.Segments[0].RuleID)
		assert.Empty(t, q.Segments[1].RuleID)
	})

	t.Run("stays of a day or more charge day units", func(t *testing.T) {
		q, err := pricing.Compute(friday, friday.Add(26*time.Hour), 100, 1000, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(1), q.DayUnits)
		// One day unit at $10 plus 2 hourly hours.
		assert.Equal(t, int64(1200), q.Fee.Cents())
		require.Len(t, q.Segments, 1)
		assert.Equal(t, friday.Add(24*time.Hour), q.Segments[0].Start)
	})

	t.Run("day units are never rule-multiplied", func(t *testing.T) {
		allDay := pricing.Rule{
			ID:          uuid.New(),
			StartMinute: 0,
			EndMinute:   24 * 60,
			Multiplier:  mustDecimal(t, "2"),
			Priority:    1,
		}
		q, err := pricing.Compute(friday, friday.Add(48*time.Hour), 100, 1000, []pricing.Rule{allDay})
		require.NoError(t, err)

		assert.Equal(t, int64(2), q.DayUnits)
		assert.Equal(t, int64(2000), q.Fee.Cents())
		assert.Empty(t, q.Segments)
	})

	t.Run("rejects empty interval", func(t *testing.T) {
		_, err := pricing.Compute(friday, friday, 100, 1000, nil)
		require.ErrorIs(t, err, pricing.ErrInvalidInterval)
	})
}

func TestResolve(t *testing.T) {
	at := friday.Add(19 * time.Hour)
	locID := uuid.New()

	t.Run("nil when nothing matches", func(t *testing.T) {
		assert.Nil(t, pricing.Resolve(nil, at))
		assert.Nil(t, pricing.Resolve([]pricing.Rule{eveningRule(t, "1.5")}, friday.Add(10*time.Hour)))
	})

	t.Run("higher priority wins", func(t *testing.T) {
		low := eveningRule(t, "1.2")
		low.Priority = 1
		high := eveningRule(t, "1.5")
		high.Priority = 5

		winner := pricing.Resolve([]pricing.Rule{low, high}, at)
		require.NotNil(t, winner)
		assert.Equal(t, high.ID, winner.ID)
	})

	t.Run("location-scoped beats global at equal priority", func(t *testing.T) {
		global := eveningRule(t, "1.2")
		scoped := eveningRule(t, "1.5")
		scoped.LocationID = &locID

		winner := pricing.Resolve([]pricing.Rule{global, scoped}, at)
		require.NotNil(t, winner)
		assert.Equal(t, scoped.ID, winner.ID)
	})

	t.Run("ties break on rule ID", func(t *testing.T) {
		a := eveningRule(t, "1.2")
		b := eveningRule(t, "1.5")

		want := a.ID
		if b.ID.String() < a.ID.String() {
			want = b.ID
		}
		winner := pricing.Resolve([]pricing.Rule{a, b}, at)
		require.NotNil(t, winner)
		assert.Equal(t, want, winner.ID)
	})

	t.Run("window end is exclusive", func(t *testing.T) {
		rule := eveningRule(t, "1.5")
		assert.True(t, rule.AppliesAt(friday.Add(18*time.Hour)))
		assert.False(t, rule.AppliesAt(friday.Add(22*time.Hour)))
	})
}
