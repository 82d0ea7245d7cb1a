// Package handler exposes the checkout service over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/lojinha/checkout-service/internal/domain/cart"
	"github.com/lojinha/checkout-service/internal/domain/order"
)

// CheckoutService is the slice of *checkout.Service the handler needs.
type CheckoutService interface {
	ProcessOrder(ctx context.Context, c cart.Cart, paymentToken string) (*order.Order, error)
}

// Handler routes HTTP requests to the checkout service.
type Handler struct {
	checkout CheckoutService
}

// New constructs a Handler around the given checkout service.
func New(svc CheckoutService) *Handler {
	return &Handler{checkout: svc}
}

// Register mounts the handler's routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/checkout", h.Checkout)
}

// errorResponse is the JSON body for all non-2xx responses.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zctx.From(r.Context()).Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Code: status, Message: msg})
}
