package domain

import "errors"

// Error is the failure vocabulary shared by every layer. Code is a stable
// machine-readable name that survives serialization, Status is the HTTP
// status the API maps it to.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches by code so wrapped copies still compare equal to the sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Board lifecycle and validation failures.
var (
	ErrEmptyBoardId = &Error{
		Code:    "EmptyBoardId",
		Message: "Board ID cannot be empty",
		Status:  400,
	}
	ErrBoardIdTooLong = &Error{
		Code:    "BoardIdTooLong",
		Message: "Board ID too long",
		Status:  400,
	}
	ErrInvalidBoardIdChars = &Error{
		Code:    "InvalidBoardIdChars",
		Message: "Board ID contains invalid characters - only alphanumeric, hyphen and underscore allowed",
		Status:  400,
	}
	ErrEmptyIpfsCid = &Error{
		Code:    "EmptyIpfsCid",
		Message: "IPFS CID cannot be empty",
		Status:  400,
	}
	ErrInvalidIpfsCidLength = &Error{
		Code:    "InvalidIpfsCidLength",
		Message: "Invalid IPFS CID length - must be between 32 and 64 characters",
		Status:  400,
	}
	ErrInvalidIpfsCid = &Error{
		Code:    "InvalidIpfsCid",
		Message: "Invalid IPFS CID format",
		Status:  400,
	}
	ErrDuplicateFeedbackBoard = &Error{
		Code:    "DuplicateFeedbackBoard",
		Message: "Feedback board already exists for this creator and board ID",
		Status:  409,
	}
	ErrFeedbackBoardNotFound = &Error{
		Code:    "FeedbackBoardNotFound",
		Message: "Feedback board does not exist",
		Status:  404,
	}
	ErrUnauthorizedAccess = &Error{
		Code:    "UnauthorizedAccess",
		Message: "Only the board creator can perform this action",
		Status:  403,
	}
	ErrCreatorCannotSubmit = &Error{
		Code:    "CreatorCannotSubmit",
		Message: "Board creators cannot submit feedback to their own boards",
		Status:  403,
	}
	ErrBoardAlreadyArchived = &Error{
		Code:    "BoardAlreadyArchived",
		Message: "Feedback board is already archived",
		Status:  409,
	}
	ErrCannotSubmitToArchivedBoard = &Error{
		Code:    "CannotSubmitToArchivedBoard",
		Message: "Cannot submit feedback to an archived board",
		Status:  409,
	}
	ErrCannotUpvoteInArchivedBoard = &Error{
		Code:    "CannotUpvoteInArchivedBoard",
		Message: "Cannot upvote feedback in an archived board",
		Status:  409,
	}
	ErrCannotDownvoteInArchivedBoard = &Error{
		Code:    "CannotDownvoteInArchivedBoard",
		Message: "Cannot downvote feedback in an archived board",
		Status:  409,
	}
	ErrInsufficientFunds = &Error{
		Code:    "InsufficientFunds",
		Message: "Insufficient funds to cover the platform fee",
		Status:  402,
	}
)

// Transport-level failures raised at the API boundary.
var (
	ErrInvalidIdentity = &Error{
		Code:    "InvalidIdentity",
		Message: "Identity must be a 32-byte hex-encoded public key",
		Status:  400,
	}
	ErrInvalidRequestBody = &Error{
		Code:    "InvalidRequestBody",
		Message: "Body is invalid json",
		Status:  400,
	}
	ErrMissingRequiredFields = &Error{
		Code:    "MissingRequiredFields",
		Message: "Required fields missing or malformed",
		Status:  400,
	}
	ErrInvalidCreditAmount = &Error{
		Code:    "InvalidCreditAmount",
		Message: "Credit amount must be positive",
		Status:  400,
	}
	ErrUnauthenticated = &Error{
		Code:    "Unauthenticated",
		Message: "Request is missing a valid identity token",
		Status:  401,
	}
	ErrInvalidOperatorToken = &Error{
		Code:    "InvalidOperatorToken",
		Message: "Operator token is missing or invalid",
		Status:  403,
	}
	ErrRateLimited = &Error{
		Code:    "RateLimited",
		Message: "Rate limit exceeded, try again later",
		Status:  429,
	}
)

// CodeOf extracts the stable code from err, or "Internal" for everything
// else.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "Internal"
}

// StatusOf extracts the HTTP status from err, defaulting to 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 500
}
