package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-pricing/internal/packaging"
)

// Item is one ledger row. ProductID is the business identity and is unique
// within a ledger; it may be empty while the row is still being edited.
// RowID exists only for list-key stability and is never merged on.
type Item struct {
	RowID     string          `json:"rowId"`
	ProductID string          `json:"productId"`
	Title     string          `json:"title,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Qty       int             `json:"qty"`
	Packaging *packaging.Cost `json:"packaging,omitempty"`
}

// LineTotal is unitPrice × quantity. Negative quantities contribute nothing;
// they are rejected here rather than propagated into the totals.
func (i Item) LineTotal() decimal.Decimal {
	if i.Qty <= 0 {
		return decimal.Zero
	}
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// AddOrMerge appends the incoming item to the ledger, or merges its quantity
// into the existing row when one already carries the same product identity.
// New rows get a fresh ephemeral row id and a quantity of 1 when unspecified.
// The input slice is not mutated.
func AddOrMerge(items []Item, incoming Item) []Item {
	if incoming.Qty == 0 {
		incoming.Qty = 1
	}
	if incoming.ProductID != "" {
		for idx, existing := range items {
			if existing.ProductID == incoming.ProductID {
				next := make([]Item, len(items))
				copy(next, items)
				next[idx].Qty = existing.Qty + incoming.Qty
				return next
			}
		}
	}
	if incoming.RowID == "" {
		incoming.RowID = uuid.NewString()
	}
	next := make([]Item, 0, len(items)+1)
	next = append(next, items...)
	return append(next, incoming)
}

// Remove deletes the row with the given row id. Removing an unknown row is a
// no-op, so the operation is idempotent.
func Remove(items []Item, rowID string) []Item {
	next := make([]Item, 0, len(items))
	for _, it := range items {
		if it.RowID == rowID {
			continue
		}
		next = append(next, it)
	}
	return next
}

// Edit replaces the row wholly with the provided item. Callers pass the
// complete desired row, not a partial patch. Unknown row ids leave the
// ledger unchanged.
func Edit(items []Item, rowID string, replacement Item) []Item {
	next := make([]Item, len(items))
	copy(next, items)
	for idx, it := range next {
		if it.RowID == rowID {
			replacement.RowID = rowID
			next[idx] = replacement
			break
		}
	}
	return next
}

// Subtotal sums the line totals of the ledger.
func Subtotal(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// PackagingRefs projects the ledger onto its packaging references, in ledger
// order, for the packaging aggregator.
func PackagingRefs(items []Item) []*packaging.Cost {
	refs := make([]*packaging.Cost, 0, len(items))
	for _, it := range items {
		refs = append(refs, it.Packaging)
	}
	return refs
}
