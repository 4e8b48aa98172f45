package memory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/storage"
)

var ctx = context.Background()

func testIdentity(fill byte) domain.Identity {
	var id domain.Identity
	for i := range id {
		id[i] = fill
	}
	return id
}

func testBoard(creator domain.Identity) domain.FeedbackBoard {
	return domain.FeedbackBoard{
		Creator:        creator,
		BoardId:        "my-board",
		ContentPointer: "Qm" + strings.Repeat("a", 44),
	}
}

func mustBalance(t *testing.T, s *Storage, account domain.Identity) int64 {
	t.Helper()
	balance, err := s.Balance(ctx, account)
	require.NoError(t, err)
	return balance
}

func TestCreateBoard(t *testing.T) {
	creator := testIdentity(1)
	platform := testIdentity(9)

	t.Run("stores record and settles fee", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Credit(ctx, creator, 25))

		board := testBoard(creator)
		err := s.CreateBoard(ctx, board, storage.Transfer{From: creator, To: platform, Amount: 10})
		require.NoError(t, err)

		got, err := s.GetBoard(ctx, board.Address())
		require.NoError(t, err)
		assert.Equal(t, board, got)
		assert.Equal(t, int64(15), mustBalance(t, s, creator))
		assert.Equal(t, int64(10), mustBalance(t, s, platform))
	})

	t.Run("duplicate address rejected before fee", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Credit(ctx, creator, 100))

		board := testBoard(creator)
		fee := storage.Transfer{From: creator, To: platform, Amount: 10}
		require.NoError(t, s.CreateBoard(ctx, board, fee))

		err := s.CreateBoard(ctx, board, fee)
		assert.ErrorIs(t, err, domain.ErrDuplicateFeedbackBoard)
		assert.Equal(t, int64(90), mustBalance(t, s, creator), "failed create must not charge")
	})

	t.Run("insufficient funds leaves no record", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Credit(ctx, creator, 9))

		board := testBoard(creator)
		err := s.CreateBoard(ctx, board, storage.Transfer{From: creator, To: platform, Amount: 10})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		_, err = s.GetBoard(ctx, board.Address())
		assert.ErrorIs(t, err, domain.ErrFeedbackBoardNotFound)
		assert.Equal(t, int64(9), mustBalance(t, s, creator))
		assert.Zero(t, mustBalance(t, s, platform))
	})

	t.Run("zero fee works without accounts", func(t *testing.T) {
		s := New()
		board := testBoard(creator)
		require.NoError(t, s.CreateBoard(ctx, board, storage.Transfer{}))
	})
}

func TestMutateBoard(t *testing.T) {
	creator := testIdentity(1)
	voter := testIdentity(2)
	platform := testIdentity(9)
	newPointer := "b" + strings.Repeat("x", 40)

	setup := func(t *testing.T) (*Storage, domain.FeedbackBoard) {
		t.Helper()
		s := New()
		require.NoError(t, s.Credit(ctx, creator, 100))
		board := testBoard(creator)
		require.NoError(t, s.CreateBoard(ctx, board, storage.Transfer{From: creator, To: platform, Amount: 10}))
		return s, board
	}

	t.Run("persists callback changes and fee", func(t *testing.T) {
		s, board := setup(t)
		require.NoError(t, s.Credit(ctx, voter, 5))

		updated, err := s.MutateBoard(ctx, board.Address(), storage.Transfer{From: voter, To: platform, Amount: 1}, func(b *domain.FeedbackBoard) error {
			b.ContentPointer = newPointer
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, newPointer, updated.ContentPointer)

		got, err := s.GetBoard(ctx, board.Address())
		require.NoError(t, err)
		assert.Equal(t, newPointer, got.ContentPointer)
		assert.Equal(t, int64(4), mustBalance(t, s, voter))
		assert.Equal(t, int64(11), mustBalance(t, s, platform))
	})

	t.Run("unknown address", func(t *testing.T) {
		s := New()
		_, err := s.MutateBoard(ctx, domain.BoardAddress(creator, "nope"), storage.Transfer{}, func(b *domain.FeedbackBoard) error {
			return nil
		})
		assert.ErrorIs(t, err, domain.ErrFeedbackBoardNotFound)
	})

	t.Run("callback error aborts everything", func(t *testing.T) {
		s, board := setup(t)
		require.NoError(t, s.Credit(ctx, voter, 5))

		boom := errors.New("boom")
		_, err := s.MutateBoard(ctx, board.Address(), storage.Transfer{From: voter, To: platform, Amount: 1}, func(b *domain.FeedbackBoard) error {
			b.ContentPointer = newPointer
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := s.GetBoard(ctx, board.Address())
		require.NoError(t, err)
		assert.Equal(t, board.ContentPointer, got.ContentPointer, "aborted mutation must not persist")
		assert.Equal(t, int64(5), mustBalance(t, s, voter), "aborted mutation must not charge")
	})

	t.Run("insufficient funds aborts record change", func(t *testing.T) {
		s, board := setup(t)

		_, err := s.MutateBoard(ctx, board.Address(), storage.Transfer{From: voter, To: platform, Amount: 1}, func(b *domain.FeedbackBoard) error {
			b.ContentPointer = newPointer
			return nil
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		got, err := s.GetBoard(ctx, board.Address())
		require.NoError(t, err)
		assert.Equal(t, board.ContentPointer, got.ContentPointer)
	})
}

func TestBalanceAndCredit(t *testing.T) {
	account := testIdentity(3)

	s := New()
	assert.Zero(t, mustBalance(t, s, account), "unknown accounts read as empty")

	require.NoError(t, s.Credit(ctx, account, 7))
	require.NoError(t, s.Credit(ctx, account, 3))
	assert.Equal(t, int64(10), mustBalance(t, s, account))

	assert.ErrorIs(t, s.Credit(ctx, account, 0), domain.ErrInvalidCreditAmount)
	assert.ErrorIs(t, s.Credit(ctx, account, -5), domain.ErrInvalidCreditAmount)
}
