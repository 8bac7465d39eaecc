//go:build unit

package policy_test

import (
	"testing"
	"time"

	"parkcore/internal/domain/policy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frac(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func standardPolicy(t *testing.T) *policy.Policy {
	t.Helper()
	p, err := policy.New(uuid.New(), nil, []policy.Band{
		{MinLead: time.Hour, RefundFraction: frac(t, "0.5")},
		{MinLead: 24 * time.Hour, RefundFraction: frac(t, "1")},
	})
	require.NoError(t, err)
	return p
}

func TestPolicyRefundFraction(t *testing.T) {
	start := time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)

	t.Run("bands pick by lead time", func(t *testing.T) {
		p := standardPolicy(t)
		cases := []struct {
			name     string
			cancelAt time.Time
			want     string
		}{
			{"well in advance", start.Add(-48 * time.Hour), "1"},
			{"exactly at the generous threshold", start.Add(-24 * time.Hour), "1"},
			{"just under the generous threshold", start.Add(-24*time.Hour + time.Second), "0.5"},
			{"one hour before", start.Add(-time.Hour), "0.5"},
			{"below every band", start.Add(-10 * time.Minute), "0"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				got, err := p.RefundFraction(start, c.cancelAt)
				require.NoError(t, err)
				assert.True(t, got.Equal(frac(t, c.want)), "got %s want %s", got, c.want)
			})
		}
	})

	t.Run("cancelling after start fails without an after-start band", func(t *testing.T) {
		p := standardPolicy(t)
		_, err := p.RefundFraction(start, start.Add(time.Minute))
		require.ErrorIs(t, err, policy.ErrAlreadyStarted)
	})

	t.Run("after-start band permits late cancellation", func(t *testing.T) {
		p, err := policy.New(uuid.New(), nil, []policy.Band{
			{MinLead: time.Hour, RefundFraction: frac(t, "0.5")},
			{MinLead: -30 * time.Minute, RefundFraction: frac(t, "0.1")},
		})
		require.NoError(t, err)

		got, err := p.RefundFraction(start, start.Add(10*time.Minute))
		require.NoError(t, err)
		assert.True(t, got.Equal(frac(t, "0.1")))

		// past the after-start window nothing matches
		got, err = p.RefundFraction(start, start.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("band order in input does not matter", func(t *testing.T) {
		ascending, err := policy.New(uuid.New(), nil, []policy.Band{
			{MinLead: time.Hour, RefundFraction: frac(t, "0.5")},
			{MinLead: 24 * time.Hour, RefundFraction: frac(t, "1")},
		})
		require.NoError(t, err)
		descending, err := policy.New(uuid.New(), nil, []policy.Band{
			{MinLead: 24 * time.Hour, RefundFraction: frac(t, "1")},
			{MinLead: time.Hour, RefundFraction: frac(t, "0.5")},
		})
		require.NoError(t, err)

		cancelAt := start.Add(-2 * time.Hour)
		a, err := ascending.RefundFraction(start, cancelAt)
		require.NoError(t, err)
		b, err := descending.RefundFraction(start, cancelAt)
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
		assert.True(t, a.Equal(frac(t, "0.5")))
	})

	t.Run("rejects fractions outside the unit interval", func(t *testing.T) {
		_, err := policy.New(uuid.New(), nil, []policy.Band{
			{MinLead: time.Hour, RefundFraction: frac(t, "1.5")},
		})
		require.ErrorIs(t, err, policy.ErrInvalidFraction)

		_, err = policy.New(uuid.New(), nil, []policy.Band{
			{MinLead: time.Hour, RefundFraction: frac(t, "-0.1")},
		})
		require.ErrorIs(t, err, policy.ErrInvalidFraction)
	})
}

func TestPolicySet(t *testing.T) {
	locA := uuid.New()
	locB := uuid.New()

	global, err := policy.New(uuid.New(), nil, nil)
	require.NoError(t, err)
	scoped, err := policy.New(uuid.New(), &locA, nil)
	require.NoError(t, err)

	t.Run("location policy wins over global", func(t *testing.T) {
		s := policy.NewSet([]*policy.Policy{global, scoped})
		assert.Equal(t, scoped, s.For(locA))
		assert.Equal(t, global, s.For(locB))
	})

	t.Run("nil when nothing is configured", func(t *testing.T) {
		s := policy.NewSet(nil)
		assert.Nil(t, s.For(locA))
	})
}
