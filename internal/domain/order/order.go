package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lojinha/checkout-service/internal/domain/cart"
)

// Status enumerates the lifecycle states of a persisted order.
type Status string

// StatusProcessed marks an order whose payment was captured and which has
// been handed to fulfillment.
const StatusProcessed Status = "PROCESSED"

// Candidate describes an order before persistence. It carries no identity:
// the repository alone assigns one when the candidate is saved.
type Candidate struct {
	Cart       cart.Cart
	FinalTotal decimal.Decimal
	Status     Status
}

// Order is the authoritative record of a completed checkout. FinalTotal is
// the amount actually charged, after any tier discount.
type Order struct {
	ID         string
	Cart       cart.Cart
	FinalTotal decimal.Decimal
	Status     Status
	CreatedAt  time.Time
}

// Repository defines persistence operations for orders. Save assigns the
// order identity and returns the persisted record; a persistence failure
// surfaces as an error, never as a nil order.
type Repository interface {
	Save(ctx context.Context, candidate Candidate) (*Order, error)
}
