package packaging

import "github.com/shopspring/decimal"

// Cost describes the packaging surcharge a product requires.
type Cost struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Shared bool            `json:"shared"`
}

// Total reduces the packaging references of a cart, in ledger order, to a
// single surcharge. A shared packaging id is billed once across the whole
// cart; a non-shared packaging is billed per occurrence even when the id
// repeats. Nil entries (items without packaging) contribute nothing.
func Total(refs []*Cost) decimal.Decimal {
	total := decimal.Zero
	charged := make(map[int64]struct{}, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		if _, ok := charged[ref.ID]; ok {
			continue
		}
		total = total.Add(ref.Amount)
		if ref.Shared {
			charged[ref.ID] = struct{}{}
		}
	}
	return total
}
