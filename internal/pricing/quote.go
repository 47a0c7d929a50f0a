// Package pricing implements the order pricing engine: tier discounts,
// market-style rounding, flat and banded video rates, and the custom quote
// calculator. Everything here is a pure transformation of its inputs —
// cheap enough to recompute on every client keystroke.
package pricing

import "github.com/shopspring/decimal"

// Request limits applied at the boundary; anything outside is clamped, not
// rejected, so a garbled input degrades to a conservative price instead of
// an error.
const (
	MaxCount           = 999
	MinDurationSeconds = 15
)

var (
	jitterBase = decimal.NewFromFloat(0.18)
	jitterStep = decimal.NewFromFloat(0.07)
)

// Request is an ad-hoc order as assembled by the client.
type Request struct {
	PhotoCount           int
	VideoCount           int
	VideoDurationSeconds int
	Platform             string
	Extras               []string
	Tier                 Tier
	Urgent               bool
}

// Quote is the priced outcome of a request. It is a value; recompute it
// whenever the request changes.
type Quote struct {
	Total decimal.Decimal `json:"total"`
	Eta   string          `json:"eta"`
	Tier  Tier            `json:"tier"`
}

// Calculator prices custom requests from the configured rate and extras
// tables. Tables are read-only after construction; a Calculator is safe for
// concurrent use.
type Calculator struct {
	rates  Rates
	extras map[string]ExtraOption
}

// NewCalculator builds a calculator over the given tables.
func NewCalculator(rates Rates, extras []ExtraOption) *Calculator {
	byID := make(map[string]ExtraOption, len(extras))
	for _, opt := range extras {
		byID[opt.ID] = opt
	}
	return &Calculator{rates: rates, extras: byID}
}

// Quote prices the request. Totals are monotonically non-decreasing in
// photo count, video count, and any added extra.
func (c *Calculator) Quote(req Request) Quote {
	tier := ParseTier(string(req.Tier))
	photos := clampCount(req.PhotoCount)
	videos := clampCount(req.VideoCount)
	if photos == 0 && videos == 0 {
		return Quote{Total: decimal.Zero, Eta: EtaNone, Tier: tier}
	}

	dur := req.VideoDurationSeconds
	if dur < MinDurationSeconds {
		dur = MinDurationSeconds
	}
	var unitVideo decimal.Decimal
	switch {
	case dur <= 15:
		unitVideo = c.rates.Video15
	case dur <= 45:
		unitVideo = c.rates.Video45
	case dur <= 60:
		unitVideo = c.rates.Video60
	default:
		unitVideo = c.rates.LongFormUnitPrice(dur)
	}

	platformMult, ok := c.rates.Platform[req.Platform]
	if !ok {
		platformMult = decimal.NewFromInt(1)
	}

	extraVideo := decimal.Zero
	extraPhoto := decimal.Zero
	extraOrder := decimal.Zero
	urgent := req.Urgent
	seen := make(map[string]struct{}, len(req.Extras))
	for _, id := range req.Extras {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		opt, ok := c.extras[id]
		if !ok {
			continue
		}
		switch opt.Kind {
		case ExtraKindVideo:
			extraVideo = extraVideo.Add(opt.UnitPrice)
		case ExtraKindPhoto:
			extraPhoto = extraPhoto.Add(opt.UnitPrice)
		default:
			extraOrder = extraOrder.Add(opt.UnitPrice)
		}
		if opt.ID == UrgentExtraID {
			urgent = true
		}
	}

	tierMult := tier.Multiplier()
	photoPart := decimal.NewFromInt(int64(photos)).Mul(c.rates.Photo.Add(extraPhoto).Mul(tierMult))
	videoPart := decimal.NewFromInt(int64(videos)).Mul(unitVideo.Mul(platformMult).Add(extraVideo).Mul(tierMult))
	rawTotal := photoPart.Add(videoPart).Add(extraOrder)

	// Light deterministic jitter so the raw total itself does not land on a
	// suspiciously round number before the cents game.
	jitterMod := int64(photos*5+videos*9+dur) % 9
	jitter := jitterBase.Add(jitterStep.Mul(decimal.NewFromInt(jitterMod)))

	totalRaw := rawTotal.Add(jitter)
	if totalRaw.IsNegative() {
		totalRaw = decimal.Zero
	}
	total := MarketRound(totalRaw, int64(photos*31+videos*17+dur))

	return Quote{
		Total: total,
		Eta:   EstimateDelivery(total, urgent),
		Tier:  tier,
	}
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}
