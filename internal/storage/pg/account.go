package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/storage"
)

// settleTransfer moves the fee between accounts on q. The debit is
// conditional on sufficient balance, which both enforces the funds rule and
// keeps the balance CHECK from ever firing. Accounts with no row read as
// zero, so a missing payer simply cannot afford anything.
func settleTransfer(q Querier, t storage.Transfer) error {
	if t.Amount == 0 {
		return nil
	}
	res, err := q.Exec(
		"UPDATE accounts SET balance = balance - $1 WHERE address = $2 AND balance >= $1",
		t.Amount, t.From.Bytes(),
	)
	if err != nil {
		return fmt.Errorf("failed to debit account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for debit: %w", err)
	}
	if affected == 0 {
		return domain.ErrInsufficientFunds
	}
	if err := credit(q, t.To, t.Amount); err != nil {
		return err
	}
	return nil
}

func credit(q Querier, account domain.Identity, amount int64) error {
	_, err := q.Exec(
		`INSERT INTO accounts(address, balance) VALUES($1, $2)
		 ON CONFLICT (address) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance`,
		account.Bytes(), amount,
	)
	if err != nil {
		return fmt.Errorf("failed to credit account: %w", err)
	}
	return nil
}

// Balance treats unknown accounts as empty rather than missing.
func (s *Storage) Balance(ctx context.Context, account domain.Identity) (int64, error) {
	var balance int64
	err := s.db.QueryRow("SELECT balance FROM accounts WHERE address = $1", account.Bytes()).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query balance: %w", err)
	}
	return balance, nil
}

func (s *Storage) Credit(ctx context.Context, account domain.Identity, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidCreditAmount
	}
	return credit(s.db, account, amount)
}
