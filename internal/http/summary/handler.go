package summary

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mreis/penny/internal/auth"
	"github.com/mreis/penny/internal/summary"
)

type Handler struct {
	svc *summary.Service
}

func NewHandler(svc *summary.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/categories", h.categories)
	r.Get("/growth", h.growth)
}

func side(r *http.Request) summary.Side {
	if s := r.URL.Query().Get("side"); s != "" {
		return summary.Side(s)
	}

	return summary.SideExpenses
}

type categoryShareResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Percent  decimal.Decimal `json:"percent"`
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	shares, err := h.svc.ByCategory(r.Context(), auth.UserID(r.Context()), side(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := make([]categoryShareResponse, 0, len(shares))
	for _, s := range shares {
		resp = append(resp, categoryShareResponse{Category: s.Category, Total: s.Total, Percent: s.Percent})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type monthGrowthResponse struct {
	Month  string           `json:"month"`
	Total  decimal.Decimal  `json:"total"`
	Growth *decimal.Decimal `json:"growth,omitempty"`
}

func (h *Handler) growth(w http.ResponseWriter, r *http.Request) {
	months, err := h.svc.MonthOverMonth(r.Context(), auth.UserID(r.Context()), side(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := make([]monthGrowthResponse, 0, len(months))
	for _, m := range months {
		resp = append(resp, monthGrowthResponse{Month: m.Month, Total: m.Total, Growth: m.Growth})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
