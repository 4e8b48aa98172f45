package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/storage/memory"
)

func TestAccountService(t *testing.T) {
	account := testIdentity(11)

	t.Run("balance starts at zero", func(t *testing.T) {
		svc := NewAccount(memory.New())
		balance, err := svc.Balance(ctx, account)
		require.NoError(t, err)
		assert.Zero(t, balance)
	})

	t.Run("credit accumulates", func(t *testing.T) {
		svc := NewAccount(memory.New())
		require.NoError(t, svc.Credit(ctx, account, 10))
		require.NoError(t, svc.Credit(ctx, account, 5))

		balance, err := svc.Balance(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(15), balance)
	})

	t.Run("non-positive credit rejected", func(t *testing.T) {
		svc := NewAccount(memory.New())
		assert.ErrorIs(t, svc.Credit(ctx, account, 0), domain.ErrInvalidCreditAmount)
		assert.ErrorIs(t, svc.Credit(ctx, account, -3), domain.ErrInvalidCreditAmount)
	})
}
