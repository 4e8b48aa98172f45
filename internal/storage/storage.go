// Package storage defines the persistence contract for board records and
// account balances. Implementations must make every write atomic: the fee
// transfer and the record change inside one call either both land or both
// roll back, and concurrent operations against the same record address are
// serialized.
package storage

import (
	"context"

	"github.com/feedboard-dev/feedboard/internal/domain"
)

// Transfer moves Amount balance units from one account to another as part
// of a record operation. A zero Amount is a no-op the store must accept.
type Transfer struct {
	From   domain.Identity
	To     domain.Identity
	Amount int64
}

// Store is the record and balance store.
//
// CreateBoard allocates the record at the board's derived address and
// settles the fee in one atomic step. It fails with
// domain.ErrDuplicateFeedbackBoard when the address is already occupied and
// domain.ErrInsufficientFunds when the creator cannot cover the fee, and in
// both cases leaves balances untouched.
//
// MutateBoard loads the record at addr, runs mutate against it, settles the
// fee and persists the result, all in one atomic step. A mutate error
// aborts the whole operation and is returned verbatim. The callback runs
// while the record is locked, so it must stay free of store calls.
type Store interface {
	CreateBoard(ctx context.Context, board domain.FeedbackBoard, fee Transfer) error
	MutateBoard(ctx context.Context, addr domain.Address, fee Transfer, mutate func(*domain.FeedbackBoard) error) (domain.FeedbackBoard, error)
	GetBoard(ctx context.Context, addr domain.Address) (domain.FeedbackBoard, error)
	Balance(ctx context.Context, account domain.Identity) (int64, error)
	Credit(ctx context.Context, account domain.Identity, amount int64) error
	Ping(ctx context.Context) error
	Close() error
}
