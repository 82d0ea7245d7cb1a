package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lojinha/checkout-service/internal/domain/cart"
)

type checkoutRequest struct {
	Owner        ownerPayload  `json:"owner"`
	Items        []itemPayload `json:"items"`
	PaymentToken string        `json:"paymentToken"`
}

type ownerPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Tier  string `json:"tier"`
}

type itemPayload struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type orderResponse struct {
	ID         string          `json:"id"`
	FinalTotal decimal.Decimal `json:"finalTotal"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Checkout handles POST /v1/checkout: it validates the payload, runs a single
// checkout attempt, and maps the three outcomes to status codes — 201 for a
// placed order, 402 for a declined payment, 5xx for collaborator failures.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c, err := req.toCart()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.PaymentToken == "" {
		writeError(w, r, http.StatusBadRequest, "paymentToken required")
		return
	}

	placed, err := h.checkout.ProcessOrder(r.Context(), c, req.PaymentToken)
	if err != nil {
		zctx.From(r.Context()).Error("checkout failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "checkout failed")
		return
	}
	if placed == nil {
		writeError(w, r, http.StatusPaymentRequired, "payment declined")
		return
	}

	writeJSON(w, r, http.StatusCreated, orderResponse{
		ID:         placed.ID,
		FinalTotal: placed.FinalTotal,
		Status:     string(placed.Status),
		CreatedAt:  placed.CreatedAt,
	})
}

// toCart validates the payload and converts it to a domain cart.
func (r checkoutRequest) toCart() (cart.Cart, error) {
	if r.Owner.Email == "" {
		return cart.Cart{}, errors.New("owner.email required")
	}
	tier, err := cart.ParseTier(r.Owner.Tier)
	if err != nil {
		return cart.Cart{}, err
	}

	items := make([]cart.Item, len(r.Items))
	for i, item := range r.Items {
		if item.Price.IsNegative() {
			return cart.Cart{}, errors.Errorf("item %q: price must not be negative", item.Name)
		}
		items[i] = cart.Item{Name: item.Name, Price: item.Price}
	}

	return cart.Cart{
		Owner: cart.User{
			ID:    r.Owner.ID,
			Name:  r.Owner.Name,
			Email: r.Owner.Email,
			Tier:  tier,
		},
		Items: items,
	}, nil
}
