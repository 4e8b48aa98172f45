// Package validation holds the shape checks for caller-supplied record
// fields. Checks run in a fixed order (emptiness, then length, then
// character or prefix rules) so a given input always fails with the same
// error regardless of which operation carried it.
package validation

import (
	"strings"
	"unicode"

	"github.com/feedboard-dev/feedboard/internal/domain"
)

// BoardId checks a board identifier: non-blank, at most
// domain.MaxBoardIdLen bytes, letters, digits, hyphens and underscores only.
func BoardId(boardId string) error {
	if strings.TrimSpace(boardId) == "" {
		return domain.ErrEmptyBoardId
	}
	if len(boardId) > domain.MaxBoardIdLen {
		return domain.ErrBoardIdTooLong
	}
	for _, c := range boardId {
		if !isBoardIdChar(c) {
			return domain.ErrInvalidBoardIdChars
		}
	}
	return nil
}

// ContentPointer checks a content pointer: non-blank, between
// domain.MinContentPointerLen and domain.MaxContentPointerLen bytes, and
// carrying a recognised content-address prefix ("Qm" or "b").
func ContentPointer(contentPointer string) error {
	if strings.TrimSpace(contentPointer) == "" {
		return domain.ErrEmptyIpfsCid
	}
	if len(contentPointer) < domain.MinContentPointerLen || len(contentPointer) > domain.MaxContentPointerLen {
		return domain.ErrInvalidIpfsCidLength
	}
	if !strings.HasPrefix(contentPointer, "Qm") && !strings.HasPrefix(contentPointer, "b") {
		return domain.ErrInvalidIpfsCid
	}
	return nil
}

func isBoardIdChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '-' || c == '_'
}
