// Package handler implements the HTTP endpoints of the feedback board API.
package handler

import (
	"context"

	"github.com/feedboard-dev/feedboard/internal/service"
)

// Pinger reports whether a dependency can serve requests.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	board    service.BoardService
	accounts service.AccountService
	health   Pinger
}

func New(board service.BoardService, accounts service.AccountService, health Pinger) *Handler {
	return &Handler{board: board, accounts: accounts, health: health}
}
