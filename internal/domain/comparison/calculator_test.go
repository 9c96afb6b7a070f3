package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procompare/internal/core/id"
	"procompare/internal/core/types"
	"procompare/internal/domain/catalogs/supplier"
)

func offer(supplierID id.ID, price string) *supplier.Offer {
	return &supplier.Offer{
		ID:         id.New(),
		SupplierID: supplierID,
		ItemCode:   "SAP-001",
		Currency:   types.DefaultCurrency,
		Price:      types.MustMoneyPtr(price),
	}
}

func noQuote(supplierID id.ID) *supplier.Offer {
	return &supplier.Offer{
		ID:         id.New(),
		SupplierID: supplierID,
		ItemCode:   "SAP-001",
		Currency:   types.DefaultCurrency,
	}
}

func TestCompare_NoOffers(t *testing.T) {
	sid := id.New()
	res := Compare(nil, &sid, types.MustMoneyPtr("10"))

	assert.Nil(t, res.SelectedPrice)
	assert.Nil(t, res.HighestPrice)
	assert.Nil(t, res.Amount)
	assert.Nil(t, res.AmountDifference)
	assert.True(t, res.Percentage.IsZero())
	assert.False(t, res.IsBestPrice)
}

func TestCompare_SelectedAndHighest(t *testing.T) {
	chosen := id.New()
	other := id.New()

	offers := []*supplier.Offer{
		offer(other, "4"),
		offer(chosen, "3"),
		offer(id.New(), "3.5"),
	}

	res := Compare(offers, &chosen, types.MustMoneyPtr("100"))

	require.NotNil(t, res.SelectedPrice)
	assert.Equal(t, "3", res.SelectedPrice.String())
	require.NotNil(t, res.HighestPrice)
	assert.Equal(t, "4", res.HighestPrice.String())

	// amount = 3 * 100, difference = 300 - 400, percentage = -100/300 * 100
	require.NotNil(t, res.Amount)
	assert.Equal(t, "300", res.Amount.String())
	require.NotNil(t, res.AmountDifference)
	assert.Equal(t, "-100", res.AmountDifference.String())
	assert.Equal(t, "-33.33", res.Percentage.String())

	assert.True(t, res.IsBestPrice, "3 is the cheapest quote")
}

func TestCompare_SelectedEqualsHighest(t *testing.T) {
	chosen := id.New()

	offers := []*supplier.Offer{
		offer(id.New(), "2"),
		offer(chosen, "5"),
	}

	res := Compare(offers, &chosen, types.MustMoneyPtr("10"))

	require.NotNil(t, res.AmountDifference)
	assert.True(t, res.AmountDifference.IsZero())
	assert.True(t, res.Percentage.IsZero())
	assert.False(t, res.IsBestPrice, "a strictly cheaper offer exists")
}

func TestCompare_SoleOfferIsBothBestAndHighest(t *testing.T) {
	chosen := id.New()

	res := Compare([]*supplier.Offer{offer(chosen, "5")}, &chosen, types.MustMoneyPtr("10"))

	require.NotNil(t, res.AmountDifference)
	assert.True(t, res.AmountDifference.IsZero())
	assert.True(t, res.Percentage.IsZero())
	assert.True(t, res.IsBestPrice)
}

func TestCompare_ZeroAmountGuard(t *testing.T) {
	chosen := id.New()
	offers := []*supplier.Offer{offer(chosen, "5"), offer(id.New(), "9")}

	// Zero order quantity: amount = 0, percentage must be 0, no division error.
	res := Compare(offers, &chosen, types.MoneyPtr(types.Zero()))
	require.NotNil(t, res.Amount)
	assert.True(t, res.Amount.IsZero())
	assert.True(t, res.Percentage.IsZero())

	// Nil order quantity defaults to zero.
	res = Compare(offers, &chosen, nil)
	require.NotNil(t, res.Amount)
	assert.True(t, res.Amount.IsZero())
	assert.True(t, res.Percentage.IsZero())
}

func TestCompare_NoSelectedSupplier(t *testing.T) {
	offers := []*supplier.Offer{offer(id.New(), "5"), offer(id.New(), "9")}

	res := Compare(offers, nil, types.MustMoneyPtr("10"))

	assert.Nil(t, res.SelectedPrice)
	assert.Nil(t, res.Amount)
	assert.Nil(t, res.AmountDifference)
	assert.True(t, res.Percentage.IsZero())
	require.NotNil(t, res.HighestPrice)
	assert.Equal(t, "9", res.HighestPrice.String())
}

func TestCompare_NilPriceOffersIgnored(t *testing.T) {
	chosen := id.New()
	silent := id.New()

	offers := []*supplier.Offer{
		noQuote(silent),
		offer(chosen, "7"),
		noQuote(id.New()),
	}

	res := Compare(offers, &chosen, types.MustMoneyPtr("2"))

	require.NotNil(t, res.SelectedPrice)
	assert.Equal(t, "7", res.SelectedPrice.String())
	require.NotNil(t, res.HighestPrice)
	assert.Equal(t, "7", res.HighestPrice.String(), "no-quote offers are never the highest")
	assert.True(t, res.IsBestPrice)

	// The selected supplier itself having no quote yields no selected price.
	res = Compare(offers, &silent, types.MustMoneyPtr("2"))
	assert.Nil(t, res.SelectedPrice)
	assert.Nil(t, res.Amount)
}

func TestCompare_PercentageRounding(t *testing.T) {
	chosen := id.New()

	// amount = 3*7 = 21, highest*qty = 22.386, diff = -1.386,
	// percentage = -6.6 → -6.60
	offers := []*supplier.Offer{
		offer(chosen, "3"),
		offer(id.New(), "3.198"),
	}

	res := Compare(offers, &chosen, types.MustMoneyPtr("7"))
	require.NotNil(t, res.AmountDifference)
	assert.Equal(t, "-6.6", res.Percentage.String())
}
