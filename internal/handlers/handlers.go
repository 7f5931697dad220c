package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/santoshmanaguli/finpay-dashboard/internal/httputil"
	"github.com/santoshmanaguli/finpay-dashboard/internal/logger"
	"github.com/santoshmanaguli/finpay-dashboard/internal/store"
	"go.uber.org/zap"
)

// Handler serves read-only views over the store. Writes go through whatever
// frontend service owns the workflow; this process only exposes the data
// layer.
type Handler struct {
	store *store.Store
}

func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		httputil.WriteError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.store.Categories().List(r.Context())
	if err != nil {
		h.serverError(w, "list categories", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cats)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.Users().Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.storeError(w, "get user", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) ListUserCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.store.CreditCards().ListByUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serverError(w, "list cards", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cards)
}

func (h *Handler) ListUserRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.store.Rewards().ListByUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serverError(w, "list rewards", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rewards)
}

func (h *Handler) ListCardTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.store.Transactions().ListByCard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.serverError(w, "list transactions", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, txs)
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.Transactions().Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.storeError(w, "get transaction", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) storeError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		httputil.WriteError(w, http.StatusNotFound, "not found")
		return
	}
	h.serverError(w, op, err)
}

func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	logger.Log.Error("request failed", zap.String("op", op), zap.Error(err))
	httputil.WriteError(w, http.StatusInternalServerError, "internal error")
}
