package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/dev-playground/order-demo/internal/inventory/application"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("inventory-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/inventory/{sku}", h.getStock)
	r.Put("/inventory/{sku}", h.restock)

	return r
}

func (h *Handler) getStock(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetStock")
	defer span.End()

	sku := chi.URLParam(r, "sku")
	stock := h.service.GetStock(ctx, sku)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stock)
}

type restockReq struct {
	Available int `json:"available"`
}

func (h *Handler) restock(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Restock")
	defer span.End()

	var req restockReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if req.Available < 0 {
		http.Error(w, "available must be >= 0", http.StatusBadRequest)
		return
	}

	sku := chi.URLParam(r, "sku")
	h.service.Restock(ctx, sku, req.Available)
	h.log.Info("restocked", "sku", sku, "available", req.Available)

	w.WriteHeader(http.StatusNoContent)
}
