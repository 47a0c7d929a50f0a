package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tier identifies the editor experience level attached to an order.
// Catalog prices are quoted at the advanced tier; lower tiers are
// discounted from it.
type Tier string

// Known tiers, from cheapest to reference.
const (
	TierEntry    Tier = "entry"
	TierMid      Tier = "mid"
	TierAdvanced Tier = "advanced"
)

var (
	multiplierMid   = decimal.NewFromFloat(0.86)
	multiplierEntry = decimal.NewFromFloat(0.74)
)

// ParseTier normalises arbitrary input to a known tier. Unknown values
// resolve to the advanced reference tier so pricing never fails on a bad key.
func ParseTier(value string) Tier {
	switch Tier(strings.ToLower(strings.TrimSpace(value))) {
	case TierEntry:
		return TierEntry
	case TierMid:
		return TierMid
	default:
		return TierAdvanced
	}
}

// Multiplier returns the price multiplier of the tier relative to advanced.
func (t Tier) Multiplier() decimal.Decimal {
	switch t {
	case TierEntry:
		return multiplierEntry
	case TierMid:
		return multiplierMid
	default:
		return decimal.NewFromInt(1)
	}
}
