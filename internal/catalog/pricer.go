package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/karameloo/pricing-api/internal/pricing"
)

// Seed offsets keep tier-discounted prices from landing on the same cents
// ending as the advanced price of the same package.
const (
	entrySeedOffset = 13
	midSeedOffset   = 7
)

// PriceFor returns the package price at the given tier. Advanced is the
// reference tier: its price is the base price untouched. Lower tiers are
// discounted and re-rounded onto a market ending seeded by the package id.
func PriceFor(p Package, tier pricing.Tier) decimal.Decimal {
	tier = pricing.ParseTier(string(tier))
	if tier == pricing.TierAdvanced {
		return p.BasePrice
	}
	discounted := p.BasePrice.Mul(tier.Multiplier())
	seed := int64(p.ID) + midSeedOffset
	if tier == pricing.TierEntry {
		seed = int64(p.ID) + entrySeedOffset
	}
	return pricing.MarketRound(discounted, seed)
}
