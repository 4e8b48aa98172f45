package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feedboard-dev/feedboard/internal/domain"
)

func TestBoardId(t *testing.T) {
	cases := []struct {
		name    string
		boardId string
		want    error
	}{
		{"simple", "my-board", nil},
		{"all allowed classes", "Board_123-x", nil},
		{"single char", "b", nil},
		{"max length", strings.Repeat("a", 32), nil},
		{"empty", "", domain.ErrEmptyBoardId},
		{"whitespace only", "   ", domain.ErrEmptyBoardId},
		{"too long", strings.Repeat("a", 33), domain.ErrBoardIdTooLong},
		{"length checked before charset", strings.Repeat("!", 40), domain.ErrBoardIdTooLong},
		{"inner space", "my board", domain.ErrInvalidBoardIdChars},
		{"punctuation", "board!", domain.ErrInvalidBoardIdChars},
		{"slash", "a/b", domain.ErrInvalidBoardIdChars},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := BoardId(tc.boardId)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestContentPointer(t *testing.T) {
	cases := []struct {
		name    string
		pointer string
		want    error
	}{
		{"v0 style", "Qm" + strings.Repeat("Y", 44), nil},
		{"v1 style", "b" + strings.Repeat("a", 31), nil},
		{"min length", "Qm" + strings.Repeat("a", 30), nil},
		{"max length", "b" + strings.Repeat("a", 63), nil},
		{"empty", "", domain.ErrEmptyIpfsCid},
		{"whitespace only", strings.Repeat(" ", 40), domain.ErrEmptyIpfsCid},
		{"too short", "Qm" + strings.Repeat("a", 29), domain.ErrInvalidIpfsCidLength},
		{"too long", "b" + strings.Repeat("a", 64), domain.ErrInvalidIpfsCidLength},
		{"length checked before prefix", "xy", domain.ErrInvalidIpfsCidLength},
		{"unknown prefix", "Xy" + strings.Repeat("a", 44), domain.ErrInvalidIpfsCid},
		{"uppercase b prefix", "B" + strings.Repeat("a", 45), domain.ErrInvalidIpfsCid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ContentPointer(tc.pointer)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}
