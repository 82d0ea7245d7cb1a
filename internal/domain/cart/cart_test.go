package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("PREMIUM")
	require.NoError(t, err)
	assert.Equal(t, TierPremium, tier)

	tier, err = ParseTier("STANDARD")
	require.NoError(t, err)
	assert.Equal(t, TierStandard, tier)

	_, err = ParseTier("GOLD")
	require.ErrorIs(t, err, ErrUnknownTier)

	_, err = ParseTier("premium")
	require.ErrorIs(t, err, ErrUnknownTier)
}

func TestSubtotal(t *testing.T) {
	c := Cart{Items: []Item{
		{Name: "a", Price: decimal.RequireFromString("50.50")},
		{Name: "b", Price: decimal.RequireFromString("29.50")},
	}}
	assert.True(t, decimal.NewFromInt(80).Equal(c.Subtotal()))

	assert.True(t, decimal.Zero.Equal(Cart{}.Subtotal()))
}
