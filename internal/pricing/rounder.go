package pricing

import "github.com/shopspring/decimal"

// marketEndings are the cents endings a displayed price may carry. The
// point is to avoid round totals; the ending is picked from the seed so the
// same inputs always render the same price.
var marketEndings = []decimal.Decimal{
	decimal.NewFromFloat(0.90),
	decimal.NewFromFloat(0.80),
	decimal.NewFromFloat(0.70),
	decimal.NewFromFloat(0.60),
	decimal.NewFromFloat(0.40),
}

var (
	tenCents      = decimal.NewFromFloat(0.10)
	maxDriftBelow = decimal.NewFromFloat(1.20)
)

// MarketRound nudges a raw amount onto one of the fixed cents endings,
// deterministically by seed. The result never rises above the raw value
// (rounding must not silently increase a price), never goes negative, and
// stays within 1.30 of the input.
func MarketRound(value decimal.Decimal, seed int64) decimal.Decimal {
	if seed < 0 {
		seed = -seed
	}
	n := int64(len(marketEndings))

	v := value
	if v.IsNegative() {
		v = decimal.Zero
	}
	base := v.Floor()
	out := base.Add(marketEndings[seed%n])
	if out.GreaterThan(v) {
		out = out.Sub(tenCents)
		if out.IsNegative() {
			out = decimal.Zero
		}
	}
	// The floor may have left the candidate too far under the true value;
	// re-pick with the next ending in rotation to stay within bounds.
	if v.Sub(out).GreaterThan(maxDriftBelow) {
		out = base.Add(marketEndings[(seed+1)%n])
	}
	return out.Round(2)
}
