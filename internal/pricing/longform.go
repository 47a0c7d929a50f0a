package pricing

import "github.com/shopspring/decimal"

var (
	oneMinute  = decimal.NewFromInt(1)
	maxMinutes = decimal.NewFromInt(180)
	sixty      = decimal.NewFromInt(60)
	thirteen   = decimal.NewFromInt(13)
)

// LongFormUnitPrice prices one video longer than 60 seconds. The first
// minute is covered by the Video60 flat unit; the remaining minutes walk
// the discount bands in order so the per-minute cost falls as the video
// gets longer. Durations are clamped to [1min, 3h].
func (r Rates) LongFormUnitPrice(durationSeconds int) decimal.Decimal {
	secs := durationSeconds
	if secs < 60 {
		secs = 60
	}
	minutes := decimal.NewFromInt(int64(secs)).Div(sixty)
	if minutes.GreaterThan(maxMinutes) {
		minutes = maxMinutes
	}
	if minutes.LessThan(oneMinute) {
		minutes = oneMinute
	}

	price := r.Video60
	remaining := minutes.Sub(oneMinute)
	lastCap := oneMinute
	lastRate := decimal.Zero
	for _, band := range r.LongBands {
		bandCap := decimal.NewFromInt(band.UpToMinutes)
		if bandCap.GreaterThan(maxMinutes) {
			bandCap = maxMinutes
		}
		if bandCap.LessThan(oneMinute) {
			bandCap = lastCap
		}
		room := bandCap.Sub(lastCap)
		if room.IsNegative() {
			room = decimal.Zero
		}
		take := remaining
		if room.LessThan(take) {
			take = room
		}
		if take.IsPositive() {
			price = price.Add(take.Mul(band.PerMinute))
			remaining = remaining.Sub(take)
		}
		lastCap = bandCap
		lastRate = band.PerMinute
		if !remaining.IsPositive() {
			break
		}
	}
	// Only reachable if the band table stops short of the 180-minute clamp;
	// charge whatever is left at the last rate.
	if remaining.IsPositive() && lastRate.IsPositive() {
		price = price.Add(remaining.Mul(lastRate))
	}

	seed := minutes.Mul(thirteen).Round(0).IntPart()
	return MarketRound(price, seed)
}
