package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-pricing/internal/cart"
	"github.com/noah-isme/backend-pricing/internal/delivery"
	"github.com/noah-isme/backend-pricing/internal/packaging"
	"github.com/noah-isme/backend-pricing/internal/pricing"
)

func TestComputeQuoteWholeTotal(t *testing.T) {
	t.Parallel()

	in := pricing.QuoteInput{
		Items: []cart.Item{
			{RowID: "a", ProductID: "p1", UnitPrice: decimal.NewFromInt(5000), Qty: 2,
				Packaging: &packaging.Cost{ID: 1, Amount: decimal.NewFromInt(500), Shared: true}},
		},
		TaxRatePercent: decimal.NewFromInt(9),
	}
	res := pricing.ComputeQuote(in)

	// 10500 × 1.09 = 11445, already whole: no rounding line.
	require.Equal(t, "10000", res.Subtotal.String())
	require.Equal(t, "500", res.Packaging.String())
	require.Equal(t, "945", res.Tax.String())
	require.True(t, res.Rounding.IsZero())
	require.Equal(t, "11445", res.Total.String())
}

func TestComputeQuoteRoundsUpFractionalTotal(t *testing.T) {
	t.Parallel()

	in := pricing.QuoteInput{
		Items: []cart.Item{
			{RowID: "a", ProductID: "p1", UnitPrice: decimal.NewFromInt(5000), Qty: 2,
				Packaging: &packaging.Cost{ID: 1, Amount: decimal.NewFromInt(500), Shared: true}},
		},
		TaxRatePercent: decimal.NewFromFloat(9.5),
	}
	res := pricing.ComputeQuote(in)

	// 10500 × 1.095 = 11497.5: half a unit rounds up to 11498.
	require.Equal(t, "0.5", res.Rounding.String())
	require.Equal(t, "11498", res.Total.String())
}

func TestComputeQuoteTaxCoversPackagingAndDelivery(t *testing.T) {
	t.Parallel()

	method := &delivery.Method{Pricing: delivery.PricingFixed, BasePrice: decimal.NewFromInt(20000)}
	in := pricing.QuoteInput{
		Items: []cart.Item{
			{RowID: "a", ProductID: "p1", UnitPrice: decimal.NewFromInt(10000), Qty: 1,
				Packaging: &packaging.Cost{ID: 3, Amount: decimal.NewFromInt(2000), Shared: false}},
		},
		Delivery:       delivery.Selection{Method: method},
		TaxRatePercent: decimal.NewFromInt(10),
	}
	res := pricing.ComputeQuote(in)

	// Tax base is subtotal + packaging + delivery = 32000.
	require.Equal(t, "3200", res.Tax.String())
	require.Equal(t, "35200", res.Total.String())
}

func TestComputeQuoteNeverDiscounts(t *testing.T) {
	t.Parallel()

	in := pricing.QuoteInput{
		Items:          []cart.Item{{RowID: "a", ProductID: "p1", UnitPrice: decimal.NewFromInt(100000), Qty: 3}},
		TaxRatePercent: decimal.NewFromInt(11),
	}
	res := pricing.ComputeQuote(in)
	require.True(t, res.Discount.IsZero(), "discounts only exist in confirmation mode")
}

func TestComputeQuoteEmptyInputs(t *testing.T) {
	t.Parallel()

	res := pricing.ComputeQuote(pricing.QuoteInput{})
	require.True(t, res.Subtotal.IsZero())
	require.True(t, res.Tax.IsZero())
	require.True(t, res.Total.IsZero())
}

func TestComputeQuoteZeroTaxRateMeansZeroTax(t *testing.T) {
	t.Parallel()

	in := pricing.QuoteInput{
		Items: []cart.Item{{RowID: "a", ProductID: "p1", UnitPrice: decimal.NewFromInt(7500), Qty: 2}},
	}
	res := pricing.ComputeQuote(in)
	require.True(t, res.Tax.IsZero())
	require.Equal(t, "15000", res.Total.String())
}

func TestComputeQuoteIdempotent(t *testing.T) {
	t.Parallel()

	in := pricing.QuoteInput{
		Items: []cart.Item{
			{RowID: "a", ProductID: "p1", UnitPrice: decimal.NewFromFloat(3333.33), Qty: 3,
				Packaging: &packaging.Cost{ID: 9, Amount: decimal.NewFromInt(750), Shared: true}},
		},
		TaxRatePercent: decimal.NewFromFloat(9.5),
	}
	first := pricing.ComputeQuote(in)
	second := pricing.ComputeQuote(in)

	require.Equal(t, first.Subtotal.String(), second.Subtotal.String())
	require.Equal(t, first.Packaging.String(), second.Packaging.String())
	require.Equal(t, first.Delivery.String(), second.Delivery.String())
	require.Equal(t, first.Tax.String(), second.Tax.String())
	require.Equal(t, first.Rounding.String(), second.Rounding.String())
	require.Equal(t, first.Total.String(), second.Total.String())
}
