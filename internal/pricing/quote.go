package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pricing/internal/cart"
	"github.com/noah-isme/backend-pricing/internal/delivery"
	"github.com/noah-isme/backend-pricing/internal/packaging"
)

// QuoteInput gathers everything the quote computer reads. Every field may be
// zero-valued: the preview must always produce a number.
type QuoteInput struct {
	Items          []cart.Item
	Delivery       delivery.Selection
	TaxRatePercent decimal.Decimal
}

// ComputeQuote prices a cart that has not been submitted yet.
//
// Tax applies to subtotal + packaging + delivery without intermediate
// rounding, no discount is ever applied in this mode, and the grand total is
// rounded up to the next whole currency unit with the difference reported as
// Rounding. A zero tax rate means the setting has not loaded, not that the
// order is tax-free, and still prices to zero tax either way.
func ComputeQuote(in QuoteInput) Result {
	res := zeroResult()
	res.Subtotal = cart.Subtotal(in.Items)
	res.Packaging = packaging.Total(cart.PackagingRefs(in.Items))
	res.Delivery = delivery.Cost(in.Delivery)

	rate := clampRate(in.TaxRatePercent)
	base := res.Subtotal.Add(res.Packaging).Add(res.Delivery)
	res.Tax = base.Mul(rate).Div(hundred)

	raw := base.Add(res.Tax)
	frac := raw.Mod(one)
	if !frac.IsZero() {
		res.Rounding = one.Sub(frac)
	}
	res.Total = raw.Add(res.Rounding)
	return res
}
