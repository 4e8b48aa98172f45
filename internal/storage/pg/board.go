package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/storage"
)

// CreateBoard inserts the record and settles the creation fee in one
// transaction. The primary key on address enforces the duplicate rule, so
// a lost race still fails cleanly.
func (s *Storage) CreateBoard(ctx context.Context, board domain.FeedbackBoard, fee storage.Transfer) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO feedback_boards(address, creator, board_id, content_pointer, is_archived) VALUES($1, $2, $3, $4, $5)",
			board.Address().Bytes(), board.Creator.Bytes(), board.BoardId, board.ContentPointer, board.Archived,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateFeedbackBoard
			}
			return fmt.Errorf("failed to insert board: %w", err)
		}
		return settleTransfer(tx, fee)
	})
}

// MutateBoard locks the record, applies mutate, settles the fee and writes
// the result back. Any error along the way rolls the whole thing back;
// mutate errors are returned verbatim so domain failures keep their codes.
func (s *Storage) MutateBoard(ctx context.Context, addr domain.Address, fee storage.Transfer, mutate func(*domain.FeedbackBoard) error) (domain.FeedbackBoard, error) {
	var board domain.FeedbackBoard
	err := WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		board, err = boardForUpdate(tx, addr)
		if err != nil {
			return err
		}
		if err := mutate(&board); err != nil {
			return err
		}
		if err := settleTransfer(tx, fee); err != nil {
			return err
		}
		if _, err := tx.Exec(
			"UPDATE feedback_boards SET content_pointer = $2, is_archived = $3, updated = now() WHERE address = $1",
			addr.Bytes(), board.ContentPointer, board.Archived,
		); err != nil {
			return fmt.Errorf("failed to update board: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.FeedbackBoard{}, err
	}
	return board, nil
}

func (s *Storage) GetBoard(ctx context.Context, addr domain.Address) (domain.FeedbackBoard, error) {
	return scanBoard(s.db.QueryRow(
		"SELECT creator, board_id, content_pointer, is_archived FROM feedback_boards WHERE address = $1",
		addr.Bytes(),
	))
}

func boardForUpdate(q Querier, addr domain.Address) (domain.FeedbackBoard, error) {
	return scanBoard(q.QueryRow(
		"SELECT creator, board_id, content_pointer, is_archived FROM feedback_boards WHERE address = $1 FOR UPDATE",
		addr.Bytes(),
	))
}

func scanBoard(row *sql.Row) (domain.FeedbackBoard, error) {
	var board domain.FeedbackBoard
	var creator []byte
	err := row.Scan(&creator, &board.BoardId, &board.ContentPointer, &board.Archived)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.FeedbackBoard{}, domain.ErrFeedbackBoardNotFound
		}
		return domain.FeedbackBoard{}, fmt.Errorf("failed to scan board: %w", err)
	}
	board.Creator, err = domain.IdentityFromBytes(creator)
	if err != nil {
		return domain.FeedbackBoard{}, fmt.Errorf("corrupt creator column: %w", err)
	}
	return board, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
