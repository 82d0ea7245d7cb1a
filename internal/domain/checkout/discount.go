package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/lojinha/checkout-service/internal/domain/cart"
)

// premiumRate is the fraction of the subtotal a PREMIUM customer pays.
var premiumRate = decimal.RequireFromString("0.9")

// FinalTotal prices a cart under the tier discount policy: PREMIUM owners pay
// 90% of the subtotal, everyone else pays it in full. Discounted totals are
// rounded to 2 decimal places; undiscounted totals are returned exactly as
// summed.
func FinalTotal(c cart.Cart) decimal.Decimal {
	subtotal := c.Subtotal()
	if c.Owner.Tier == cart.TierPremium {
		return subtotal.Mul(premiumRate).Round(2)
	}
	return subtotal
}
