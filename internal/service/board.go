package service

import (
	"context"

	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/events"
	"github.com/feedboard-dev/feedboard/internal/fees"
	"github.com/feedboard-dev/feedboard/internal/logger"
	"github.com/feedboard-dev/feedboard/internal/metrics"
	"github.com/feedboard-dev/feedboard/internal/storage"
	"github.com/feedboard-dev/feedboard/internal/validation"
)

// BoardService runs the operation pipeline: validate inputs, load the
// record, apply the lifecycle rules, settle the fee atomically with the
// change, then emit an event. Used as an interface so handlers can be
// tested with mocks.
type BoardService interface {
	Create(ctx context.Context, caller domain.Identity, boardId, contentPointer string) (domain.FeedbackBoard, error)
	Submit(ctx context.Context, caller, creator domain.Identity, boardId, contentPointer string) (domain.FeedbackBoard, error)
	Upvote(ctx context.Context, caller, creator domain.Identity, boardId, contentPointer string) (domain.FeedbackBoard, error)
	Downvote(ctx context.Context, caller, creator domain.Identity, boardId, contentPointer string) (domain.FeedbackBoard, error)
	Archive(ctx context.Context, caller, creator domain.Identity, boardId string) (domain.FeedbackBoard, error)
	Get(ctx context.Context, creator domain.Identity, boardId string) (domain.FeedbackBoard, error)
}

// VoteFunc is the shared shape of Upvote and Downvote, so callers can treat
// the two directions uniformly.
type VoteFunc func(ctx context.Context, caller, creator domain.Identity, boardId, contentPointer string) (domain.FeedbackBoard, error)

type Board struct {
	store   storage.Store
	fees    *fees.Schedule
	emitter events.Emitter
}

func NewBoard(store storage.Store, schedule *fees.Schedule, emitter events.Emitter) BoardService {
	return &Board{store: store, fees: schedule, emitter: emitter}
}

// Create validates both fields up front, so nothing is charged for
// malformed input, then allocates the record and settles the creation fee
// in one atomic store call.
func (s *Board) Create(ctx context.Context, caller domain.Identity, boardId, contentPointer string) (board domain.FeedbackBoard, err error) {
	defer func() { metrics.RecordOperation(domain.OpCreateBoard, err) }()

	if err = validation.BoardId(boardId); err != nil {
		return domain.FeedbackBoard{}, err
	}
	if err = validation.ContentPointer(contentPointer); err != nil {
		return domain.FeedbackBoard{}, err
	}

	board = domain.FeedbackBoard{Creator: caller, BoardId: boardId, ContentPointer: contentPointer}
	fee := s.fees.TransferFor(domain.OpCreateBoard, caller)
	if err = s.store.CreateBoard(ctx, board, fee); err != nil {
		return domain.FeedbackBoard{}, err
	}

	metrics.RecordFee(domain.OpCreateBoard, fee.Amount)
	s.emit(ctx, events.TypeBoardCreated, events.BoardCreated{
		Address:        board.Address(),
		Creator:        caller,
		BoardId:        boardId,
		ContentPointer: contentPointer,
	})
	return board, nil
}

// Submit validates the new content pointer, then lets the record decide
// whether the caller may add feedback. A board id that addresses no record
// surfaces as not-found rather than a validation error, since existing
// records are located purely by address.
func (s *Board) Submit(ctx context.Context, caller, creator domain.Identity, boardId, contentPointer string) (board domain.FeedbackBoard, err error) {
	defer func() { metrics.RecordOperation(domain.OpSubmitFeedback, err) }()

	if err = validation.ContentPointer(contentPointer); err != nil {
		return domain.FeedbackBoard{}, err
	}

	fee := s.fees.TransferFor(domain.OpSubmitFeedback, caller)
	board, err = s.store.MutateBoard(ctx, domain.BoardAddress(creator, boardId), fee, func(b *domain.FeedbackBoard) error {
		return b.AcceptFeedback(caller, contentPointer)
	})
	if err != nil {
		return domain.FeedbackBoard{}, err
	}

	metrics.RecordFee(domain.OpSubmitFeedback, fee.Amount)
	s.emit(ctx, events.TypeFeedbackSubmitted, events.FeedbackSubmitted{
		Address:        board.Address(),
		BoardId:        board.BoardId,
		Submitter:      caller,
		ContentPointer: contentPointer,
	})
	return board, nil
}

func (s *Board) Upvote(ctx context.Context, caller, creator domain.Identity, boardId, contentPointer string) (domain.FeedbackBoard, error) {
	return s.vote(ctx, domain.VoteUp, caller, creator, boardId, contentPointer)
}

func (s *Board) Downvote(ctx context.Context, caller, creator domain.Identity, boardId, contentPointer string) (domain.FeedbackBoard, error) {
	return s.vote(ctx, domain.VoteDown, caller, creator, boardId, contentPointer)
}

func (s *Board) vote(ctx context.Context, kind domain.VoteKind, caller, creator domain.Identity, boardId, contentPointer string) (board domain.FeedbackBoard, err error) {
	op := kind.Operation()
	defer func() { metrics.RecordOperation(op, err) }()

	if err = validation.ContentPointer(contentPointer); err != nil {
		return domain.FeedbackBoard{}, err
	}

	fee := s.fees.TransferFor(op, caller)
	board, err = s.store.MutateBoard(ctx, domain.BoardAddress(creator, boardId), fee, func(b *domain.FeedbackBoard) error {
		return b.ApplyVote(kind, contentPointer)
	})
	if err != nil {
		return domain.FeedbackBoard{}, err
	}

	metrics.RecordFee(op, fee.Amount)
	if kind == domain.VoteDown {
		s.emit(ctx, events.TypeFeedbackDownvoted, events.FeedbackDownvoted{
			Address:        board.Address(),
			BoardId:        board.BoardId,
			Voter:          caller,
			ContentPointer: contentPointer,
		})
	} else {
		s.emit(ctx, events.TypeFeedbackUpvoted, events.FeedbackUpvoted{
			Address:        board.Address(),
			BoardId:        board.BoardId,
			Voter:          caller,
			ContentPointer: contentPointer,
		})
	}
	return board, nil
}

// Archive is free but still runs through the fee schedule so the pipeline
// stays uniform if archiving ever gets a price.
func (s *Board) Archive(ctx context.Context, caller, creator domain.Identity, boardId string) (board domain.FeedbackBoard, err error) {
	defer func() { metrics.RecordOperation(domain.OpArchiveBoard, err) }()

	fee := s.fees.TransferFor(domain.OpArchiveBoard, caller)
	board, err = s.store.MutateBoard(ctx, domain.BoardAddress(creator, boardId), fee, func(b *domain.FeedbackBoard) error {
		return b.ArchiveBy(caller)
	})
	if err != nil {
		return domain.FeedbackBoard{}, err
	}

	s.emit(ctx, events.TypeBoardArchived, events.BoardArchived{
		Address: board.Address(),
		Creator: board.Creator,
		BoardId: board.BoardId,
	})
	return board, nil
}

func (s *Board) Get(ctx context.Context, creator domain.Identity, boardId string) (domain.FeedbackBoard, error) {
	if err := validation.BoardId(boardId); err != nil {
		return domain.FeedbackBoard{}, err
	}
	return s.store.GetBoard(ctx, domain.BoardAddress(creator, boardId))
}

// emit wraps and publishes one event. Emission is best-effort: failures are
// logged and counted, never returned, because the operation already
// committed.
func (s *Board) emit(ctx context.Context, t events.Type, payload interface{}) {
	env, err := events.NewEnvelope(t, payload)
	if err == nil {
		err = s.emitter.Emit(ctx, env)
	}
	metrics.RecordEvent(string(t), err)
	if err != nil {
		logger.Log.Error("failed to emit event", "type", t, "error", err)
	}
}
