// Package memory is an in-process Store used by tests and by the API in
// local development. It mirrors the transactional behavior of the SQL
// store: one mutex serializes operations, and failed operations leave no
// partial state behind.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/storage"
)

type Storage struct {
	mu       sync.Mutex
	boards   map[domain.Address]domain.FeedbackBoard
	balances map[domain.Identity]int64
}

func New() *Storage {
	return &Storage{
		boards:   make(map[domain.Address]domain.FeedbackBoard),
		balances: make(map[domain.Identity]int64),
	}
}

func (s *Storage) CreateBoard(ctx context.Context, board domain.FeedbackBoard, fee storage.Transfer) error {
	if board.RecordSize() > domain.MaxRecordSize {
		return fmt.Errorf("record size %d exceeds limit %d", board.RecordSize(), domain.MaxRecordSize)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	addr := board.Address()
	if _, ok := s.boards[addr]; ok {
		return domain.ErrDuplicateFeedbackBoard
	}
	if err := s.applyTransfer(fee); err != nil {
		return err
	}
	s.boards[addr] = board
	return nil
}

func (s *Storage) MutateBoard(ctx context.Context, addr domain.Address, fee storage.Transfer, mutate func(*domain.FeedbackBoard) error) (domain.FeedbackBoard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[addr]
	if !ok {
		return domain.FeedbackBoard{}, domain.ErrFeedbackBoardNotFound
	}

	// Mutate a copy so a failed fee transfer cannot leak changes.
	updated := board
	if err := mutate(&updated); err != nil {
		return domain.FeedbackBoard{}, err
	}
	if updated.RecordSize() > domain.MaxRecordSize {
		return domain.FeedbackBoard{}, fmt.Errorf("record size %d exceeds limit %d", updated.RecordSize(), domain.MaxRecordSize)
	}
	if err := s.applyTransfer(fee); err != nil {
		return domain.FeedbackBoard{}, err
	}
	s.boards[addr] = updated
	return updated, nil
}

func (s *Storage) GetBoard(ctx context.Context, addr domain.Address) (domain.FeedbackBoard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[addr]
	if !ok {
		return domain.FeedbackBoard{}, domain.ErrFeedbackBoardNotFound
	}
	return board, nil
}

// Balance treats unknown accounts as empty rather than missing.
func (s *Storage) Balance(ctx context.Context, account domain.Identity) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[account], nil
}

func (s *Storage) Credit(ctx context.Context, account domain.Identity, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidCreditAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[account] += amount
	return nil
}

func (s *Storage) Ping(ctx context.Context) error { return nil }

func (s *Storage) Close() error { return nil }

// applyTransfer settles fee while s.mu is held.
func (s *Storage) applyTransfer(fee storage.Transfer) error {
	if fee.Amount == 0 {
		return nil
	}
	if s.balances[fee.From] < fee.Amount {
		return domain.ErrInsufficientFunds
	}
	s.balances[fee.From] -= fee.Amount
	s.balances[fee.To] += fee.Amount
	return nil
}
