package service

import (
	"context"

	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/logger"
	"github.com/feedboard-dev/feedboard/internal/storage"
)

// AccountService exposes balances and the operator-only credit used to fund
// accounts.
type AccountService interface {
	Balance(ctx context.Context, account domain.Identity) (int64, error)
	Credit(ctx context.Context, account domain.Identity, amount int64) error
}

type Account struct {
	store storage.Store
}

func NewAccount(store storage.Store) AccountService {
	return &Account{store: store}
}

func (s *Account) Balance(ctx context.Context, account domain.Identity) (int64, error) {
	return s.store.Balance(ctx, account)
}

func (s *Account) Credit(ctx context.Context, account domain.Identity, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidCreditAmount
	}
	if err := s.store.Credit(ctx, account, amount); err != nil {
		return err
	}
	logger.Log.Info("account credited", "account", account.String(), "amount", amount)
	return nil
}
