package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pricing/internal/cart"
	"github.com/noah-isme/backend-pricing/internal/delivery"
	"github.com/noah-isme/backend-pricing/internal/geo"
)

// State is an immutable snapshot of a quote session: the ledger, the
// delivery selection and the tax setting, plus the Result derived from them.
// Transitions go through Apply; the snapshot is replaced, never edited.
type State struct {
	Items          []cart.Item
	Method         *delivery.Method
	AreaName       string
	Origin         *geo.Point
	Destination    *geo.Point
	TaxRatePercent decimal.Decimal
	Result         Result
}

// NewState returns an empty session priced to zero.
func NewState(origin *geo.Point, taxRatePercent decimal.Decimal) State {
	return recompute(State{Origin: origin, TaxRatePercent: taxRatePercent})
}

// Action is a session transition handled by Apply.
type Action interface{ isAction() }

// AddItem adds a line item, merging quantities on matching product identity.
type AddItem struct{ Item cart.Item }

// EditItem wholly replaces the row identified by RowID.
type EditItem struct {
	RowID string
	Item  cart.Item
}

// RemoveItem deletes the row identified by RowID.
type RemoveItem struct{ RowID string }

// SelectDelivery picks a delivery method and, for area-priced methods, an area.
type SelectDelivery struct {
	Method   *delivery.Method
	AreaName string
}

// SetDestination updates the delivery contact coordinates.
type SetDestination struct{ Point *geo.Point }

// SetTaxRate updates the store tax-rate setting.
type SetTaxRate struct{ Percent decimal.Decimal }

// Reset clears the ledger and the delivery selection after a successful
// order submission.
type Reset struct{}

func (AddItem) isAction()        {}
func (EditItem) isAction()       {}
func (RemoveItem) isAction()     {}
func (SelectDelivery) isAction() {}
func (SetDestination) isAction() {}
func (SetTaxRate) isAction()     {}
func (Reset) isAction()          {}

// Apply produces the next snapshot and eagerly recomputes its Result. The
// previous snapshot is left untouched.
func Apply(s State, a Action) State {
	switch act := a.(type) {
	case AddItem:
		s.Items = cart.AddOrMerge(s.Items, act.Item)
	case EditItem:
		s.Items = cart.Edit(s.Items, act.RowID, act.Item)
	case RemoveItem:
		s.Items = cart.Remove(s.Items, act.RowID)
	case SelectDelivery:
		s.Method = act.Method
		s.AreaName = act.AreaName
	case SetDestination:
		s.Destination = act.Point
	case SetTaxRate:
		s.TaxRatePercent = act.Percent
	case Reset:
		s.Items = nil
		s.Method = nil
		s.AreaName = ""
	}
	return recompute(s)
}

func recompute(s State) State {
	s.Result = ComputeQuote(QuoteInput{
		Items: s.Items,
		Delivery: delivery.Selection{
			Method:      s.Method,
			AreaName:    s.AreaName,
			Origin:      s.Origin,
			Destination: s.Destination,
		},
		TaxRatePercent: s.TaxRatePercent,
	})
	return s
}
