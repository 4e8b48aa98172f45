// Package fees fixes the platform fee charged per operation. Amounts are
// denominated in the smallest balance unit and never depend on payload
// size or caller.
package fees

import (
	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/storage"
)

const (
	CreateBoard      int64 = 10
	SubmitFeedback   int64 = 1
	UpvoteFeedback   int64 = 1
	DownvoteFeedback int64 = 1
	ArchiveBoard     int64 = 0
)

// Amount reports the fee for op. Unknown operations cost nothing.
func Amount(op domain.Operation) int64 {
	switch op {
	case domain.OpCreateBoard:
		return CreateBoard
	case domain.OpSubmitFeedback:
		return SubmitFeedback
	case domain.OpUpvoteFeedback:
		return UpvoteFeedback
	case domain.OpDownvoteFeedback:
		return DownvoteFeedback
	default:
		return 0
	}
}

// Schedule resolves operations into concrete transfers against the platform
// fee account. The account is injected at startup, never hard-coded.
type Schedule struct {
	platform domain.Identity
}

func NewSchedule(platform domain.Identity) *Schedule {
	return &Schedule{platform: platform}
}

// Platform is the account that collects fees.
func (s *Schedule) Platform() domain.Identity {
	return s.platform
}

// TransferFor builds the fee transfer op requires from caller. Free
// operations still produce a transfer so callers can treat every operation
// uniformly; stores skip zero amounts.
func (s *Schedule) TransferFor(op domain.Operation, caller domain.Identity) storage.Transfer {
	return storage.Transfer{
		From:   caller,
		To:     s.platform,
		Amount: Amount(op),
	}
}
