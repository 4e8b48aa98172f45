package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedboard-dev/feedboard/internal/domain"
)

var ctx = context.Background()

func TestNewEnvelope(t *testing.T) {
	var creator domain.Identity
	creator[0] = 1
	payload := BoardCreated{
		Address:        domain.BoardAddress(creator, "b"),
		Creator:        creator,
		BoardId:        "b",
		ContentPointer: "Qm123",
	}

	e, err := NewEnvelope(TypeBoardCreated, payload)
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, TypeBoardCreated, e.Type)
	assert.WithinDuration(t, time.Now().UTC(), e.EmittedAt, time.Minute)

	var decoded BoardCreated
	require.NoError(t, e.Decode(&decoded))
	assert.Equal(t, payload, decoded)
}

func TestNewEnvelope_UniqueIDs(t *testing.T) {
	a, err := NewEnvelope(TypeBoardArchived, BoardArchived{BoardId: "b"})
	require.NoError(t, err)
	b, err := NewEnvelope(TypeBoardArchived, BoardArchived{BoardId: "b"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestBus(t *testing.T) {
	t.Run("delivers to all subscribers", func(t *testing.T) {
		bus := NewBus()
		ch1, cancel1 := bus.Subscribe(4)
		defer cancel1()
		ch2, cancel2 := bus.Subscribe(4)
		defer cancel2()

		e, err := NewEnvelope(TypeBoardCreated, BoardCreated{BoardId: "b"})
		require.NoError(t, err)
		require.NoError(t, bus.Emit(ctx, e))

		assert.Equal(t, e.ID, (<-ch1).ID)
		assert.Equal(t, e.ID, (<-ch2).ID)
	})

	t.Run("cancel detaches subscriber", func(t *testing.T) {
		bus := NewBus()
		ch, cancel := bus.Subscribe(1)
		cancel()

		_, ok := <-ch
		assert.False(t, ok, "channel must be closed after cancel")

		e, err := NewEnvelope(TypeBoardCreated, BoardCreated{BoardId: "b"})
		require.NoError(t, err)
		assert.NoError(t, bus.Emit(ctx, e))
	})

	t.Run("full subscriber does not block emit", func(t *testing.T) {
		bus := NewBus()
		ch, cancel := bus.Subscribe(1)
		defer cancel()

		e1, err := NewEnvelope(TypeBoardCreated, BoardCreated{BoardId: "b"})
		require.NoError(t, err)
		e2, err := NewEnvelope(TypeBoardArchived, BoardArchived{BoardId: "b"})
		require.NoError(t, err)

		require.NoError(t, bus.Emit(ctx, e1))
		require.NoError(t, bus.Emit(ctx, e2), "second emit must not block on the full buffer")

		assert.Equal(t, e1.ID, (<-ch).ID)
	})

	t.Run("double cancel is safe", func(t *testing.T) {
		bus := NewBus()
		_, cancel := bus.Subscribe(1)
		cancel()
		cancel()
	})
}
