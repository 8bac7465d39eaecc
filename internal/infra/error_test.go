//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"parkcore/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("connection reset")

	t.Run("defaults to DB failure", func(t *testing.T) {
		err := infra.WrapRepoErr("fetch reservation", cause)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("reservation not found", cause, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("cause stays reachable through wrapping", func(t *testing.T) {
		err := infra.WrapRepoErr("insert fine", cause, infra.KindDuplicateKey)
		wrapped := fmt.Errorf("sweep pass: %w", err)

		assert.ErrorIs(t, wrapped, cause)
		assert.True(t, infra.IsKind(wrapped, infra.KindDuplicateKey))
	})

	t.Run("kind and message appear in the text", func(t *testing.T) {
		err := infra.WrapRepoErr("update slot", cause, infra.KindForeignKeyViolated)
		assert.Contains(t, err.Error(), "FOREIGN_KEY_VIOLATED")
		assert.Contains(t, err.Error(), "update slot")
	})

	t.Run("foreign errors carry no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(cause, infra.KindDBFailure))
		assert.False(t, infra.IsKind(nil, infra.KindNotFound))
	})
}
