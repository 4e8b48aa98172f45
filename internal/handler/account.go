package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

// accountParam parses the {account} route parameter.
func accountParam(r *http.Request) (domain.Identity, error) {
	account, err := domain.ParseIdentity(chi.URLParam(r, "account"))
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidIdentity
	}
	return account, nil
}

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	account, err := accountParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	balance, err := h.accounts.Balance(r.Context(), account)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.BalanceResponse{Account: account.String(), Balance: balance})
}

// CreditAccount funds an account. The route is operator-gated; this endpoint
// is the only way units enter the system.
func (h *Handler) CreditAccount(w http.ResponseWriter, r *http.Request) {
	account, err := accountParam(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.CreditRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.accounts.Credit(r.Context(), account, body.Amount); err != nil {
		utils.WriteError(w, err)
		return
	}

	balance, err := h.accounts.Balance(r.Context(), account)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.BalanceResponse{Account: account.String(), Balance: balance})
}
