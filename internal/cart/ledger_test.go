package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-pricing/internal/cart"
)

func TestAddOrMergeMergesQuantities(t *testing.T) {
	t.Parallel()

	items := cart.AddOrMerge(nil, cart.Item{ProductID: "p1", UnitPrice: decimal.NewFromInt(1000), Qty: 2})
	items = cart.AddOrMerge(items, cart.Item{ProductID: "p1", UnitPrice: decimal.NewFromInt(1000), Qty: 3})

	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Qty)
	require.NotEmpty(t, items[0].RowID)
}

func TestAddOrMergeDefaultsQuantityToOne(t *testing.T) {
	t.Parallel()

	items := cart.AddOrMerge(nil, cart.Item{ProductID: "p1", UnitPrice: decimal.NewFromInt(1000)})
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].Qty)
}

func TestAddOrMergeDistinctProducts(t *testing.T) {
	t.Parallel()

	items := cart.AddOrMerge(nil, cart.Item{ProductID: "p1", Qty: 1})
	items = cart.AddOrMerge(items, cart.Item{ProductID: "p2", Qty: 1})
	require.Len(t, items, 2)
	require.NotEqual(t, items[0].RowID, items[1].RowID)
}

func TestAddOrMergeDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	items := cart.AddOrMerge(nil, cart.Item{ProductID: "p1", Qty: 2})
	_ = cart.AddOrMerge(items, cart.Item{ProductID: "p1", Qty: 3})
	require.Equal(t, 2, items[0].Qty)
}

func TestRemoveIdempotent(t *testing.T) {
	t.Parallel()

	items := cart.AddOrMerge(nil, cart.Item{ProductID: "p1", Qty: 1})
	rowID := items[0].RowID

	items = cart.Remove(items, rowID)
	require.Empty(t, items)
	require.Empty(t, cart.Remove(items, rowID))
	require.Empty(t, cart.Remove(items, "missing"))
}

func TestEditReplacesWholeRow(t *testing.T) {
	t.Parallel()

	items := cart.AddOrMerge(nil, cart.Item{ProductID: "p1", Title: "Teh Botol", UnitPrice: decimal.NewFromInt(4000), Qty: 2})
	rowID := items[0].RowID

	items = cart.Edit(items, rowID, cart.Item{ProductID: "p1", UnitPrice: decimal.NewFromInt(4500), Qty: 6})
	require.Len(t, items, 1)
	require.Equal(t, rowID, items[0].RowID)
	require.Equal(t, 6, items[0].Qty)
	// Full-replace semantics: the title was not part of the replacement.
	require.Empty(t, items[0].Title)
	require.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(4500)))
}

func TestSubtotalClampsNegativeQuantity(t *testing.T) {
	t.Parallel()

	items := []cart.Item{
		{RowID: "a", ProductID: "p1", UnitPrice: decimal.NewFromInt(1000), Qty: 2},
		{RowID: "b", ProductID: "p2", UnitPrice: decimal.NewFromInt(9999), Qty: -3},
	}
	require.True(t, cart.Subtotal(items).Equal(decimal.NewFromInt(2000)))
}
