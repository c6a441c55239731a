package packaging_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-pricing/internal/packaging"
)

func TestTotalSharedBilledOnce(t *testing.T) {
	t.Parallel()

	box := &packaging.Cost{ID: 7, Amount: decimal.NewFromInt(500), Shared: true}
	total := packaging.Total([]*packaging.Cost{box, box})
	require.True(t, total.Equal(decimal.NewFromInt(500)), "shared packaging must be billed once, got %s", total)
}

func TestTotalNonSharedBilledPerOccurrence(t *testing.T) {
	t.Parallel()

	box := &packaging.Cost{ID: 7, Amount: decimal.NewFromInt(500), Shared: false}
	total := packaging.Total([]*packaging.Cost{box, box})
	require.True(t, total.Equal(decimal.NewFromInt(1000)), "non-shared packaging must be billed per item, got %s", total)
}

func TestTotalSkipsItemsWithoutPackaging(t *testing.T) {
	t.Parallel()

	box := &packaging.Cost{ID: 1, Amount: decimal.NewFromInt(250), Shared: true}
	total := packaging.Total([]*packaging.Cost{nil, box, nil})
	require.True(t, total.Equal(decimal.NewFromInt(250)))
}

func TestTotalMixedIDs(t *testing.T) {
	t.Parallel()

	shared := &packaging.Cost{ID: 1, Amount: decimal.NewFromInt(500), Shared: true}
	loose := &packaging.Cost{ID: 2, Amount: decimal.NewFromInt(300), Shared: false}
	total := packaging.Total([]*packaging.Cost{shared, loose, shared, loose})
	// 500 once for id 1, 300 twice for id 2.
	require.True(t, total.Equal(decimal.NewFromInt(1100)), "got %s", total)
}

func TestTotalEmpty(t *testing.T) {
	t.Parallel()

	require.True(t, packaging.Total(nil).IsZero())
}
