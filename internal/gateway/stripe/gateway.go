// Package stripe adapts the Stripe API to the checkout.PaymentGateway
// contract. Each charge is a single confirmed PaymentIntent; card declines
// are reported as unauthorized results, every other failure as an error.
package stripe

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	stripeapi "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"

	"github.com/lojinha/checkout-service/internal/domain/checkout"
)

// Amounts are charged in USD; currency conversion is owned by the caller.
const currency = "usd"

var _ checkout.PaymentGateway = (*Gateway)(nil)

// Gateway charges payments through Stripe PaymentIntents.
type Gateway struct{}

// NewGateway configures the Stripe client with the given secret key and
// returns a Gateway.
func NewGateway(secretKey string) *Gateway {
	stripeapi.Key = secretKey
	return &Gateway{}
}

// Charge confirms a PaymentIntent for the amount against the payment method
// token. A card error from Stripe maps to an unauthorized ChargeResult with
// the decline reason; transport and API failures return an error.
func (g *Gateway) Charge(ctx context.Context, amount decimal.Decimal, paymentToken string) (*checkout.ChargeResult, error) {
	params := &stripeapi.PaymentIntentParams{
		Params:        stripeapi.Params{Context: ctx},
		Amount:        stripeapi.Int64(amount.Shift(2).Round(0).IntPart()),
		Currency:      stripeapi.String(currency),
		PaymentMethod: stripeapi.String(paymentToken),
		Confirm:       stripeapi.Bool(true),
		AutomaticPaymentMethods: &stripeapi.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripeapi.Bool(true),
			AllowRedirects: stripeapi.String("never"),
		},
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		var stripeErr *stripeapi.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripeapi.ErrorTypeCard {
			return &checkout.ChargeResult{
				Authorized:    false,
				DeclineReason: declineReason(stripeErr),
			}, nil
		}
		return nil, errors.Wrap(err, "create payment intent")
	}

	if pi.Status != stripeapi.PaymentIntentStatusSucceeded {
		return &checkout.ChargeResult{
			Authorized:    false,
			DeclineReason: string(pi.Status),
		}, nil
	}

	return &checkout.ChargeResult{Authorized: true}, nil
}

func declineReason(err *stripeapi.Error) string {
	if err.DeclineCode != "" {
		return string(err.DeclineCode)
	}
	if err.Code != "" {
		return string(err.Code)
	}
	return err.Msg
}
