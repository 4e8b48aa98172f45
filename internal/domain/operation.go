package domain

// Operation identifies one of the mutating board actions. The zero value is
// deliberately invalid so forgotten fields surface early.
type Operation int

const (
	OpUnknown Operation = iota
	OpCreateBoard
	OpSubmitFeedback
	OpUpvoteFeedback
	OpDownvoteFeedback
	OpArchiveBoard
)

func (op Operation) String() string {
	switch op {
	case OpCreateBoard:
		return "create_board"
	case OpSubmitFeedback:
		return "submit_feedback"
	case OpUpvoteFeedback:
		return "upvote_feedback"
	case OpDownvoteFeedback:
		return "downvote_feedback"
	case OpArchiveBoard:
		return "archive_board"
	default:
		return "unknown"
	}
}

// VoteKind distinguishes the two vote directions, which share mechanics but
// emit different events and fail with different errors on archived boards.
type VoteKind int

const (
	VoteUp VoteKind = iota
	VoteDown
)

func (k VoteKind) String() string {
	if k == VoteDown {
		return "downvote"
	}
	return "upvote"
}

// Operation maps the vote direction to its operation.
func (k VoteKind) Operation() Operation {
	if k == VoteDown {
		return OpDownvoteFeedback
	}
	return OpUpvoteFeedback
}
