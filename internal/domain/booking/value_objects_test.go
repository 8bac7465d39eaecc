//go:build unit

package booking_test

import (
	"testing"
	"time"

	"parkcore/internal/domain/booking"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("construction", func(t *testing.T) {
		ts, err := booking.NewTimeSlot(base, base.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, ts.Start())
		assert.Equal(t, base.Add(2*time.Hour), ts.End())
		assert.Equal(t, 2*time.Hour, ts.Duration())
	})

	t.Run("rejects empty interval", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base, base)
		require.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("rejects inverted interval", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base, base.Add(-time.Minute))
		require.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*3600)
		ts, err := booking.NewTimeSlot(base.In(jst), base.Add(time.Hour).In(jst))
		require.NoError(t, err)
		assert.Equal(t, time.UTC, ts.Start().Location())
		assert.True(t, ts.Start().Equal(base))
	})

	t.Run("overlap semantics", func(t *testing.T) {
		mk := func(startOffset, endOffset time.Duration) booking.TimeSlot {
			ts, err := booking.NewTimeSlot(base.Add(startOffset), base.Add(endOffset))
			require.NoError(t, err)
			return ts
		}
		cases := []struct {
			name     string
			a, b     booking.TimeSlot
			overlaps bool
		}{
			{"identical", mk(0, 2*time.Hour), mk(0, 2*time.Hour), true},
			{"partial overlap", mk(0, 2*time.Hour), mk(time.Hour, 3*time.Hour), true},
			{"containment", mk(0, 4*time.Hour), mk(time.Hour, 2*time.Hour), true},
			{"back to back do not overlap", mk(0, 2*time.Hour), mk(2*time.Hour, 4*time.Hour), false},
			{"disjoint", mk(0, time.Hour), mk(3*time.Hour, 4*time.Hour), false},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.overlaps, c.a.Overlaps(c.b))
				assert.Equal(t, c.overlaps, c.b.Overlaps(c.a))
			})
		}
	})

	t.Run("contains is half-open", func(t *testing.T) {
		ts, err := booking.NewTimeSlot(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, ts.Contains(base))
		assert.True(t, ts.Contains(base.Add(59*time.Minute)))
		assert.False(t, ts.Contains(base.Add(time.Hour)))
		assert.False(t, ts.Contains(base.Add(-time.Nanosecond)))
	})

	t.Run("with end", func(t *testing.T) {
		ts, err := booking.NewTimeSlot(base, base.Add(time.Hour))
		require.NoError(t, err)

		widened, err := ts.WithEnd(base.Add(3 * time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base.Add(3*time.Hour), widened.End())
		assert.Equal(t, base, widened.Start())

		_, err = ts.WithEnd(base)
		require.ErrorIs(t, err, booking.ErrInvalidInterval)
	})
}

func TestMoney(t *testing.T) {
	t.Run("arithmetic", func(t *testing.T) {
		a := booking.NewMoney(1500)
		b := booking.NewMoney(250)
		assert.Equal(t, int64(1750), a.Add(b).Cents())
		assert.Equal(t, int64(1250), a.Sub(b).Cents())
		assert.True(t, booking.NewMoney(0).IsZero())
		assert.False(t, a.IsZero())
	})

	t.Run("from decimal rounds half-up", func(t *testing.T) {
		cases := []struct {
			amount string
			cents  int64
		}{
			{"10.00", 1000},
			{"10.005", 1001},
			{"10.004", 1000},
			{"0.125", 13},
			{"6", 600},
		}
		for _, c := range cases {
			d, err := decimal.NewFromString(c.amount)
			require.NoError(t, err)
			assert.Equal(t, c.cents, booking.MoneyFromDecimal(d).Cents(), "amount %s", c.amount)
		}
	})

	t.Run("mul fraction rounds half-up", func(t *testing.T) {
		half, _ := decimal.NewFromString("0.5")
		assert.Equal(t, int64(63), booking.NewMoney(125).MulFraction(half).Cents())
		assert.Equal(t, int64(0), booking.NewMoney(1000).MulFraction(decimal.Zero).Cents())
		assert.Equal(t, int64(1000), booking.NewMoney(1000).MulFraction(decimal.NewFromInt(1)).Cents())
	})
}
