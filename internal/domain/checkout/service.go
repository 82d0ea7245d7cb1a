package checkout

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/lojinha/checkout-service/internal/domain/cart"
	"github.com/lojinha/checkout-service/internal/domain/order"
)

// approvalSubject is the fixed subject line for order confirmation emails.
const approvalSubject = "Your Order has been Approved!"

// ChargeResult reports the outcome of a single charge attempt. A decline is
// an ordinary outcome carried by Authorized=false, never by an error.
type ChargeResult struct {
	Authorized    bool
	DeclineReason string
}

// PaymentGateway authorizes a payment for the given amount against an opaque
// payment token. Implementations must reserve errors for transport and
// protocol failures; ordinary declines come back in the result.
type PaymentGateway interface {
	Charge(ctx context.Context, amount decimal.Decimal, paymentToken string) (*ChargeResult, error)
}

// Notifier delivers customer-facing messages.
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// Service executes single checkout attempts. It holds only its three
// collaborators and no mutable state, so concurrent invocations are
// independent.
type Service struct {
	gateway  PaymentGateway
	orders   order.Repository
	notifier Notifier
}

// NewService creates a checkout Service with the required collaborators.
func NewService(gateway PaymentGateway, orders order.Repository, notifier Notifier) *Service {
	return &Service{
		gateway:  gateway,
		orders:   orders,
		notifier: notifier,
	}
}

// ProcessOrder runs one checkout attempt end to end: price the cart, charge
// the gateway, persist the order, notify the owner.
//
// A declined payment returns (nil, nil): no order is placed and neither the
// repository nor the notifier is touched. Collaborator failures propagate as
// errors with no retry; a notification failure after a successful save leaves
// the order persisted.
func (s *Service) ProcessOrder(ctx context.Context, c cart.Cart, paymentToken string) (*order.Order, error) {
	amount := FinalTotal(c)

	res, err := s.gateway.Charge(ctx, amount, paymentToken)
	if err != nil {
		return nil, errors.Wrap(err, "charge")
	}
	if !res.Authorized {
		return nil, nil
	}

	saved, err := s.orders.Save(ctx, order.Candidate{
		Cart:       c,
		FinalTotal: amount,
		Status:     order.StatusProcessed,
	})
	if err != nil {
		return nil, errors.Wrap(err, "save order")
	}

	body := fmt.Sprintf("Order %s in the amount of $%s", saved.ID, saved.FinalTotal)
	if err := s.notifier.SendEmail(ctx, c.Owner.Email, approvalSubject, body); err != nil {
		return nil, errors.Wrap(err, "send approval email")
	}

	return saved, nil
}
