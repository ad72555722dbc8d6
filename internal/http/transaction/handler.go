package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mreis/penny/internal/auth"
	"github.com/mreis/penny/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/status", h.updateStatus)
	r.Patch("/{id}/description", h.updateDescription)
}

// writeDomainError maps the domain sentinels onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transaction.ErrNotFound):
		http.Error(w, "transaction not found", http.StatusNotFound)
	case errors.Is(err, transaction.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, transaction.ErrIllegalState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createTransactionRequest struct {
	Type                 string `json:"type"`
	Amount               string `json:"amount"`
	Currency             string `json:"currency"`
	Description          string `json:"description"`
	TransactionDate      string `json:"transaction_date"`
	SourceAccountID      string `json:"source_account_id"`
	DestinationAccountID string `json:"destination_account_id"`
	ExpenseID            string `json:"expense_id"`
	IncomeID             string `json:"income_id"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		UserID:               auth.UserID(r.Context()),
		Type:                 req.Type,
		Amount:               req.Amount,
		Currency:             req.Currency,
		Description:          req.Description,
		Date:                 req.TransactionDate,
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		ExpenseID:            req.ExpenseID,
		IncomeID:             req.IncomeID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		txs []*transaction.Transaction
		err error
	)

	if accountID := r.URL.Query().Get("account_id"); accountID != "" {
		txs, err = h.svc.ListByAccount(r.Context(), accountID)
	} else {
		txs, err = h.svc.ListByUser(r.Context(), auth.UserID(r.Context()))
	}

	if err != nil {
		writeDomainError(w, err)
		return
	}

	// Account listings may include rows of other owners; filter them out.
	userID := auth.UserID(r.Context())
	owned := txs[:0]

	for _, tx := range txs {
		if tx.BelongsTo(userID) {
			owned = append(owned, tx)
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(owned)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// loadOwned fetches the transaction and hides other users' rows behind 404.
func (h *Handler) loadOwned(w http.ResponseWriter, r *http.Request) (*transaction.Transaction, bool) {
	id, err := transaction.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return nil, false
	}

	if !tx.BelongsTo(auth.UserID(r.Context())) {
		http.Error(w, "transaction not found", http.StatusNotFound)
		return nil, false
	}

	return tx, true
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	tx, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	tx, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), tx.ID()); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	tx, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.svc.UpdateStatus(r.Context(), tx.ID(), req.Status)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(updated)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateDescriptionRequest struct {
	Description string `json:"description"`
}

func (h *Handler) updateDescription(w http.ResponseWriter, r *http.Request) {
	tx, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	var req updateDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.svc.UpdateDescription(r.Context(), tx.ID(), req.Description)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(updated)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
