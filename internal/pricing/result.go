package pricing

import "github.com/shopspring/decimal"

var (
	one      = decimal.NewFromInt(1)
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// Result is the derived pricing breakdown. It is recomputed from scratch
// after every mutation and never edited in place.
//
// The quote computer and the invoice computer combine these terms with
// different formulas; that asymmetry is observed production behavior and
// must not be unified here.
type Result struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Packaging decimal.Decimal `json:"packagingCost"`
	Delivery  decimal.Decimal `json:"deliveryCost"`
	Discount  decimal.Decimal `json:"discountAmount"`
	Tax       decimal.Decimal `json:"taxAmount"`
	Rounding  decimal.Decimal `json:"roundAmount"`
	Total     decimal.Decimal `json:"total"`
}

func zeroResult() Result {
	return Result{
		Subtotal:  decimal.Zero,
		Packaging: decimal.Zero,
		Delivery:  decimal.Zero,
		Discount:  decimal.Zero,
		Tax:       decimal.Zero,
		Rounding:  decimal.Zero,
		Total:     decimal.Zero,
	}
}

func clampRate(percent decimal.Decimal) decimal.Decimal {
	if percent.IsNegative() {
		return decimal.Zero
	}
	return percent
}
