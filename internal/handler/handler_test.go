package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojinha/checkout-service/internal/domain/cart"
	"github.com/lojinha/checkout-service/internal/domain/order"
)

// --- Mock implementations ---

type mockCheckout struct {
	placed *order.Order
	err    error

	calls    int
	gotCart  cart.Cart
	gotToken string
}

func (m *mockCheckout) ProcessOrder(_ context.Context, c cart.Cart, token string) (*order.Order, error) {
	m.calls++
	m.gotCart = c
	m.gotToken = token
	return m.placed, m.err
}

// --- Helpers ---

func doCheckout(t *testing.T, svc CheckoutService, body string) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	New(svc).Register(mux)

	req := httptest.NewRequest(http.MethodPost, "/v1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"owner": {"id": "u1", "name": "Standard User", "email": "standard@example.com", "tier": "STANDARD"},
	"items": [{"name": "Item 1", "price": "50"}, {"name": "Item 2", "price": "30"}],
	"paymentToken": "1234-5678"
}`

// --- Tests ---

func TestCheckout_Success(t *testing.T) {
	svc := &mockCheckout{placed: &order.Order{
		ID:         "order-99",
		FinalTotal: decimal.NewFromInt(80),
		Status:     order.StatusProcessed,
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := doCheckout(t, svc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "order-99", resp.ID)
	assert.True(t, decimal.NewFromInt(80).Equal(resp.FinalTotal))
	assert.Equal(t, "PROCESSED", resp.Status)

	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "1234-5678", svc.gotToken)
	assert.Equal(t, cart.TierStandard, svc.gotCart.Owner.Tier)
	require.Len(t, svc.gotCart.Items, 2)
	assert.True(t, decimal.NewFromInt(50).Equal(svc.gotCart.Items[0].Price))
}

func TestCheckout_Declined(t *testing.T) {
	svc := &mockCheckout{placed: nil}

	rec := doCheckout(t, svc, validBody)

	require.Equal(t, http.StatusPaymentRequired, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusPaymentRequired, resp.Code)
	assert.Equal(t, "payment declined", resp.Message)
}

func TestCheckout_ServiceFailure(t *testing.T) {
	svc := &mockCheckout{err: errors.New("db down")}

	rec := doCheckout(t, svc, validBody)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCheckout_InvalidJSON(t *testing.T) {
	svc := &mockCheckout{}

	rec := doCheckout(t, svc, "{not json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestCheckout_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "unknown tier",
			body: `{"owner": {"email": "a@b.c", "tier": "GOLD"}, "items": [], "paymentToken": "t"}`,
		},
		{
			name: "missing email",
			body: `{"owner": {"tier": "STANDARD"}, "items": [], "paymentToken": "t"}`,
		},
		{
			name: "missing payment token",
			body: `{"owner": {"email": "a@b.c", "tier": "STANDARD"}, "items": []}`,
		},
		{
			name: "negative price",
			body: `{"owner": {"email": "a@b.c", "tier": "STANDARD"}, "items": [{"name": "x", "price": "-1"}], "paymentToken": "t"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCheckout{}
			rec := doCheckout(t, svc, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, 0, svc.calls)
		})
	}
}

func TestCheckout_EmptyCartAccepted(t *testing.T) {
	svc := &mockCheckout{placed: &order.Order{
		ID:         "order-1",
		FinalTotal: decimal.Zero,
		Status:     order.StatusProcessed,
	}}

	body := `{"owner": {"email": "a@b.c", "tier": "STANDARD"}, "items": [], "paymentToken": "t"}`
	rec := doCheckout(t, svc, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, svc.gotCart.Items)
}
