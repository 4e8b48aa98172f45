package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
	mw "github.com/feedboard-dev/feedboard/internal/middleware"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

// boardParams parses the {creator} and {board} route parameters.
func boardParams(r *http.Request) (domain.Identity, string, error) {
	creator, err := domain.ParseIdentity(chi.URLParam(r, "creator"))
	if err != nil {
		return domain.Identity{}, "", domain.ErrInvalidIdentity
	}
	return creator, chi.URLParam(r, "board"), nil
}

// caller returns the authenticated identity put on the context by the auth
// middleware.
func caller(r *http.Request) (domain.Identity, error) {
	id, ok := mw.CallerFromContext(r)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return id, nil
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.board.Create(r.Context(), id, body.BoardId, body.ContentPointer)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.NewBoardResponse(board))
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	creator, boardId, err := boardParams(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.board.Get(r.Context(), creator, boardId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.NewBoardResponse(board))
}

func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	creator, boardId, err := boardParams(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.SubmitFeedbackRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.board.Submit(r.Context(), id, creator, boardId, body.ContentPointer)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.NewBoardResponse(board))
}

func (h *Handler) UpvoteFeedback(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, h.board.Upvote)
}

func (h *Handler) DownvoteFeedback(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, h.board.Downvote)
}

func (h *Handler) vote(w http.ResponseWriter, r *http.Request, apply service.VoteFunc) {
	id, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	creator, boardId, err := boardParams(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.VoteRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := apply(r.Context(), id, creator, boardId, body.ContentPointer)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.NewBoardResponse(board))
}

func (h *Handler) ArchiveBoard(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	creator, boardId, err := boardParams(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	board, err := h.board.Archive(r.Context(), id, creator, boardId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.NewBoardResponse(board))
}
