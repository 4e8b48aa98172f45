package domain

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Bounds for the two variable-width record fields. MaxRecordSize is the
// worst-case footprint of one persisted record: creator identity, both
// strings with 4-byte length prefixes and the archived flag.
const (
	MaxBoardIdLen        = 32
	MinContentPointerLen = 32
	MaxContentPointerLen = 64

	MaxRecordSize = IdentityLen + 4 + MaxBoardIdLen + 4 + MaxContentPointerLen + 1
)

// FeedbackBoard is one board record. Creator and BoardId are fixed at
// creation and together determine the record address; ContentPointer tracks
// the latest off-platform content snapshot; Archived is terminal.
type FeedbackBoard struct {
	Creator        Identity `json:"creator"`
	BoardId        string   `json:"board_id"`
	ContentPointer string   `json:"content_pointer"`
	Archived       bool     `json:"is_archived"`
}

// RecordSize reports the persisted footprint of the record in the
// length-prefixed layout bounded by MaxRecordSize.
func (b *FeedbackBoard) RecordSize() int {
	return IdentityLen + 4 + len(b.BoardId) + 4 + len(b.ContentPointer) + 1
}

// AcceptFeedback applies a submission: the submitter must not be the board
// creator and the board must still be live. On success the content pointer
// is replaced with the snapshot that includes the new feedback.
func (b *FeedbackBoard) AcceptFeedback(submitter Identity, contentPointer string) error {
	if submitter == b.Creator {
		return ErrCreatorCannotSubmit
	}
	if b.Archived {
		return ErrCannotSubmitToArchivedBoard
	}
	b.ContentPointer = contentPointer
	return nil
}

// ApplyVote applies an up- or downvote. Votes are open to everyone,
// including the creator, but not on archived boards.
func (b *FeedbackBoard) ApplyVote(kind VoteKind, contentPointer string) error {
	if b.Archived {
		if kind == VoteDown {
			return ErrCannotDownvoteInArchivedBoard
		}
		return ErrCannotUpvoteInArchivedBoard
	}
	b.ContentPointer = contentPointer
	return nil
}

// ArchiveBy retires the board. Only the creator may archive, and only once.
func (b *FeedbackBoard) ArchiveBy(caller Identity) error {
	if caller != b.Creator {
		return ErrUnauthorizedAccess
	}
	if b.Archived {
		return ErrBoardAlreadyArchived
	}
	b.Archived = true
	return nil
}

// AddressLen is the width of a record address in bytes.
const AddressLen = 32

// addressTag namespaces board addresses so records of other kinds can never
// collide with them.
const addressTag = "feedback_board"

// Address locates one record. It is derived, never stored as a source of
// truth and never enumerable.
type Address [AddressLen]byte

// BoardAddress derives the record address for a creator and board id. The
// derivation is a pure function: the same pair always lands on the same
// address, which is what makes duplicate creation detectable.
func BoardAddress(creator Identity, boardId string) Address {
	buf := make([]byte, 0, len(addressTag)+IdentityLen+len(boardId))
	buf = append(buf, addressTag...)
	buf = append(buf, creator[:]...)
	buf = append(buf, boardId...)
	return Address(blake2b.Sum256(buf))
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

// ParseAddress decodes the hex form produced by String.
func ParseAddress(s string) (Address, error) {
	var a Address
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("address is not valid hex: %w", err)
	}
	if len(b) != AddressLen {
		return a, fmt.Errorf("address must be %d bytes, got %d", AddressLen, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// Address is the record address of this board.
func (b *FeedbackBoard) Address() Address {
	return BoardAddress(b.Creator, b.BoardId)
}

// MarshalText renders addresses as hex, mirroring Identity.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
