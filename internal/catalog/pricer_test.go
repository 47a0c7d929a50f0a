package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/karameloo/pricing-api/internal/pricing"
)

func TestPriceForAdvancedIsBasePrice(t *testing.T) {
	for _, p := range Default() {
		require.True(t, PriceFor(p, pricing.TierAdvanced).Equal(p.BasePrice),
			"package %d advanced price must equal base price", p.ID)
	}
}

func TestPriceForEntryRegression(t *testing.T) {
	// 27.40 * 0.74 = 20.276, seed 1+13 = 14 -> ending .40, guarded down to
	// .30 because 20.40 would exceed the discounted raw value.
	p := Package{ID: 1, BasePrice: decimal.NewFromFloat(27.40)}
	got := PriceFor(p, pricing.TierEntry)
	require.True(t, decimal.NewFromFloat(20.30).Equal(got), "got %s", got)
}

func TestPriceForTierOrdering(t *testing.T) {
	for _, p := range Default() {
		entry := PriceFor(p, pricing.TierEntry)
		mid := PriceFor(p, pricing.TierMid)
		advanced := PriceFor(p, pricing.TierAdvanced)
		require.True(t, entry.LessThanOrEqual(mid), "package %d: entry %s > mid %s", p.ID, entry, mid)
		require.True(t, mid.LessThanOrEqual(advanced), "package %d: mid %s > advanced %s", p.ID, mid, advanced)
	}
}

func TestPriceForUnknownTierFallsBackToAdvanced(t *testing.T) {
	p := Default()[0]
	require.True(t, PriceFor(p, pricing.Tier("mythic")).Equal(p.BasePrice))
}
