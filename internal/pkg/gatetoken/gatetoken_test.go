//go:build unit

package gatetoken_test

import (
	"testing"
	"time"

	"parkcore/internal/pkg/gatetoken"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateToken(t *testing.T) {
	svc := gatetoken.NewService("test-secret-key-for-gate-tokens", 48*time.Hour)
	now := time.Now()
	expectedEnd := now.Add(3 * time.Hour)

	t.Run("round trip", func(t *testing.T) {
		reservationID := uuid.New()
		slotID := uuid.New()

		token, err := svc.Issue(reservationID, slotID, now, expectedEnd)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, reservationID, claims.ReservationID)
		assert.Equal(t, slotID, claims.SlotID)
	})

	t.Run("expired token", func(t *testing.T) {
		past := now.Add(-100 * time.Hour)
		token, err := svc.Issue(uuid.New(), uuid.New(), past, past.Add(time.Hour))
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, gatetoken.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := gatetoken.NewService("a-different-secret-entirely", 48*time.Hour)
		token, err := other.Issue(uuid.New(), uuid.New(), now, expectedEnd)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, gatetoken.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Verify("not-a-jwt")
		assert.ErrorIs(t, err, gatetoken.ErrInvalidToken)
	})
}
