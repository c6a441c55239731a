package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pricing/internal/cart"
)

// InvoiceInput gathers what staff control while reconciling a created order:
// the (possibly re-priced) line items, the store tax rate and a discount
// percentage. Packaging and delivery cost are deliberately absent — they were
// fixed when the order was created and this mode does not recompute them.
type InvoiceInput struct {
	Items           []cart.Item
	TaxRatePercent  decimal.Decimal
	DiscountPercent decimal.Decimal
}

// ReconcileInvoice recomputes the authoritative figures for an existing
// order. The discount is back-calculated so that the tax-inclusive total
// lands on a multiple of 1000, and the tax line absorbs the final rounding:
// when the ceiling'd total misses the next multiple of 1000 the tax is
// decremented by exactly one unit. The discarded second tax computation and
// the decrement-by-1 are observed contract, not something to simplify into a
// direct rounding formula.
func ReconcileInvoice(in InvoiceInput) Result {
	res := zeroResult()
	res.Subtotal = cart.Subtotal(in.Items)

	rate := clampRate(in.TaxRatePercent)
	discountPct := clampRate(in.DiscountPercent)

	multiplier := one.Add(rate.Div(hundred)).Round(2)
	withTax := res.Subtotal.Mul(multiplier)

	// Tax-inclusive target: the discounted total rounded down to a
	// multiple of 1000.
	target := withTax.Mul(one.Sub(discountPct.Div(hundred))).Div(thousand).Floor().Mul(thousand)
	res.Discount = withTax.Sub(target).Div(multiplier).Round(0)

	res.Tax = res.Subtotal.Sub(res.Discount).Mul(rate).Div(hundred).Ceil()

	// Second pass: recompute the same ceiling'd tax and use it only to decide
	// whether the total needs nudging toward the next multiple of 1000.
	taxAgain := res.Subtotal.Sub(res.Discount).Mul(rate).Div(hundred).Ceil()
	preliminary := res.Subtotal.Sub(res.Discount).Add(taxAgain)
	nextThousand := preliminary.Div(thousand).Ceil().Mul(thousand)
	if !nextThousand.Equal(preliminary) {
		res.Tax = res.Tax.Sub(one)
	}

	res.Total = res.Subtotal.Sub(res.Discount).Add(res.Tax)
	// Rounding is absorbed into the tax adjustment above and never reported
	// as a separate line in this mode.
	res.Rounding = decimal.Zero
	return res
}
