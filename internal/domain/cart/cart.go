package cart

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Tier classifies a customer for discount eligibility.
type Tier string

const (
	// TierStandard customers pay the full cart total.
	TierStandard Tier = "STANDARD"
	// TierPremium customers receive a 10% discount at checkout.
	TierPremium Tier = "PREMIUM"
)

// ErrUnknownTier is returned by ParseTier for values outside the enum.
var ErrUnknownTier = errors.New("unknown customer tier")

// ParseTier converts a raw string into a Tier, rejecting unknown values.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierStandard, TierPremium:
		return Tier(s), nil
	default:
		return "", errors.Wrap(ErrUnknownTier, s)
	}
}

// User identifies the cart owner. Users are owned by an external identity
// source and are read-only here.
type User struct {
	ID    string
	Name  string
	Email string
	Tier  Tier
}

// Item is a single priced line in a cart.
type Item struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Cart holds an owner and an ordered list of items awaiting checkout.
// A cart with no items is valid and totals to zero.
type Cart struct {
	Owner User
	Items []Item
}

// Subtotal sums the item prices before any discount.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price)
	}
	return total
}
