// Package events defines the notifications published after every
// successful board operation, so indexers can mirror record state without
// polling the store. Emission is post-commit and best-effort: a lost event
// never fails or rolls back the operation that produced it.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/feedboard-dev/feedboard/internal/domain"
)

// Type tags the payload kind inside an envelope.
type Type string

const (
	TypeBoardCreated      Type = "board.created"
	TypeFeedbackSubmitted Type = "feedback.submitted"
	TypeFeedbackUpvoted   Type = "feedback.upvoted"
	TypeFeedbackDownvoted Type = "feedback.downvoted"
	TypeBoardArchived     Type = "board.archived"
)

// Envelope is the transport frame for one event. ID is unique per emission
// so consumers can deduplicate; Payload is the type-specific body.
type Envelope struct {
	ID        string          `json:"id"`
	Type      Type            `json:"type"`
	EmittedAt time.Time       `json:"emitted_at"`
	Payload   json.RawMessage `json:"payload"`
}

// NewEnvelope wraps payload in a stamped envelope.
func NewEnvelope(t Type, payload interface{}) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal %s payload: %w", t, err)
	}
	return Envelope{
		ID:        uuid.NewString(),
		Type:      t,
		EmittedAt: time.Now().UTC(),
		Payload:   raw,
	}, nil
}

// Decode unmarshals the payload into a concrete type chosen by the caller
// after inspecting Type.
func (e Envelope) Decode(into interface{}) error {
	return json.Unmarshal(e.Payload, into)
}

type BoardCreated struct {
	Address        domain.Address  `json:"address"`
	Creator        domain.Identity `json:"creator"`
	BoardId        string          `json:"board_id"`
	ContentPointer string          `json:"content_pointer"`
}

type FeedbackSubmitted struct {
	Address        domain.Address  `json:"address"`
	BoardId        string          `json:"board_id"`
	Submitter      domain.Identity `json:"submitter"`
	ContentPointer string          `json:"content_pointer"`
}

type FeedbackUpvoted struct {
	Address        domain.Address  `json:"address"`
	BoardId        string          `json:"board_id"`
	Voter          domain.Identity `json:"voter"`
	ContentPointer string          `json:"content_pointer"`
}

type FeedbackDownvoted struct {
	Address        domain.Address  `json:"address"`
	BoardId        string          `json:"board_id"`
	Voter          domain.Identity `json:"voter"`
	ContentPointer string          `json:"content_pointer"`
}

type BoardArchived struct {
	Address domain.Address  `json:"address"`
	Creator domain.Identity `json:"creator"`
	BoardId string          `json:"board_id"`
}
