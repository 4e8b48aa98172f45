// Package api defines the request and response bodies of the HTTP surface.
package api

import "github.com/feedboard-dev/feedboard/internal/domain"

type CreateBoardRequest struct {
	BoardId        string `json:"board_id" validate:"required"`
	ContentPointer string `json:"content_pointer" validate:"required"`
}

type SubmitFeedbackRequest struct {
	ContentPointer string `json:"content_pointer" validate:"required"`
}

type VoteRequest struct {
	ContentPointer string `json:"content_pointer" validate:"required"`
}

// CreditRequest deliberately has no validate tag on Amount: the service
// rejects non-positive amounts with its own error code.
type CreditRequest struct {
	Amount int64 `json:"amount"`
}

// BoardResponse is the record plus its derived address, so indexers can key
// by address without re-deriving it.
type BoardResponse struct {
	domain.FeedbackBoard
	Address string `json:"address"`
}

func NewBoardResponse(board domain.FeedbackBoard) BoardResponse {
	return BoardResponse{FeedbackBoard: board, Address: board.Address().String()}
}

type BalanceResponse struct {
	Account string `json:"account"`
	Balance int64  `json:"balance"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
