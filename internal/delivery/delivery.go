package delivery

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pricing/internal/geo"
)

// PricingType selects how a delivery method is priced.
type PricingType string

const (
	// PricingFixed charges the method base price regardless of destination.
	PricingFixed PricingType = "FIXED"
	// PricingSelectedArea charges the price of the area the customer picked.
	PricingSelectedArea PricingType = "SELECTED_AREA"
	// PricingPerKilometer charges base price plus a rate per great-circle kilometer.
	PricingPerKilometer PricingType = "PER_KILOMETER"
)

// AreaRule is a named delivery-price override for a specific area.
type AreaRule struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Method describes a delivery method from the store catalog.
type Method struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Pricing          PricingType     `json:"pricing"`
	BasePrice        decimal.Decimal `json:"basePrice"`
	PerKilometerRate decimal.Decimal `json:"perKilometerRate"`
	Areas            []AreaRule      `json:"areas,omitempty"`
}

// Selection captures everything the calculator needs for one delivery choice.
// Method, Origin and Destination are optional; a missing method prices to
// zero so the preview still renders, and missing coordinates degrade the
// per-kilometer strategy to base price only.
type Selection struct {
	Method      *Method
	AreaName    string
	Origin      *geo.Point
	Destination *geo.Point
}

// Cost resolves the delivery cost for the selection.
func Cost(sel Selection) decimal.Decimal {
	return CostAt(sel.Method, sel.AreaName, DistanceKm(sel))
}

// CostAt prices a method against an already-resolved distance.
//
// SELECTED_AREA with at least one area rule charges the chosen area's price,
// or zero when no area is chosen yet (submission validation rejects that
// state separately). PER_KILOMETER charges basePrice + rate × distance, with
// the distance term applied unrounded. Everything else, including
// SELECTED_AREA without rules, charges basePrice.
func CostAt(m *Method, areaName string, distanceKm float64) decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}
	switch {
	case m.Pricing == PricingSelectedArea && len(m.Areas) > 0:
		for _, rule := range m.Areas {
			if rule.Name == areaName {
				return rule.Price
			}
		}
		return decimal.Zero
	case m.Pricing == PricingPerKilometer:
		return m.BasePrice.Add(m.PerKilometerRate.Mul(decimal.NewFromFloat(distanceKm)))
	default:
		return m.BasePrice
	}
}

// DistanceKm reports the great-circle distance the selection spans. Zero when
// either endpoint is unknown.
func DistanceKm(sel Selection) float64 {
	return geo.Distance(sel.Origin, sel.Destination)
}
