package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestCalculator() *Calculator {
	return NewCalculator(DefaultRates(), DefaultExtras())
}

func TestQuoteEmptyOrderIsFree(t *testing.T) {
	calc := newTestCalculator()
	for _, req := range []Request{
		{},
		{VideoDurationSeconds: 600, Platform: "ytlong", Tier: TierEntry, Urgent: true},
		{PhotoCount: -3, VideoCount: -1},
	} {
		quote := calc.Quote(req)
		require.True(t, quote.Total.IsZero(), "total %s for %+v", quote.Total, req)
		require.Equal(t, EtaNone, quote.Eta)
	}
}

func TestQuoteFixedRegression(t *testing.T) {
	calc := newTestCalculator()

	// 2 photos + 1 short video, advanced, reels: raw 2*18.40 + 16.90 =
	// 53.70, jitter 0.18 + (34 mod 9)*0.07 = 0.67, seed 94 -> ending .40
	// pulled down a dime.
	quote := calc.Quote(Request{
		PhotoCount:           2,
		VideoCount:           1,
		VideoDurationSeconds: 15,
		Platform:             "reels",
		Tier:                 TierAdvanced,
	})
	require.True(t, decimal.NewFromFloat(54.30).Equal(quote.Total), "got %s", quote.Total)
	require.Equal(t, "35min", quote.Eta)
	require.Equal(t, TierAdvanced, quote.Tier)
}

func TestQuoteDeterministic(t *testing.T) {
	calc := newTestCalculator()
	req := Request{
		PhotoCount:           4,
		VideoCount:           2,
		VideoDurationSeconds: 300,
		Platform:             "tiktok",
		Extras:               []string{"optLegenda", "optRetoquePro", "optThumbnail"},
		Tier:                 TierMid,
	}
	first := calc.Quote(req)
	second := calc.Quote(req)
	require.Equal(t, first.Eta, second.Eta)
	require.True(t, first.Total.Equal(second.Total))
}

func TestQuoteMonotoneInCounts(t *testing.T) {
	calc := newTestCalculator()
	base := Request{
		VideoDurationSeconds: 45,
		Platform:             "insta",
		Extras:               []string{"optCorCine"},
		Tier:                 TierEntry,
	}
	prev := decimal.Zero
	for photos := 1; photos <= 12; photos++ {
		req := base
		req.PhotoCount = photos
		total := calc.Quote(req).Total
		require.True(t, total.GreaterThanOrEqual(prev), "photos=%d total %s below %s", photos, total, prev)
		prev = total
	}
	prev = decimal.Zero
	for videos := 1; videos <= 12; videos++ {
		req := base
		req.VideoCount = videos
		total := calc.Quote(req).Total
		require.True(t, total.GreaterThanOrEqual(prev), "videos=%d total %s below %s", videos, total, prev)
		prev = total
	}
}

func TestQuoteExtrasNeverDiscount(t *testing.T) {
	calc := newTestCalculator()
	base := Request{PhotoCount: 3, VideoCount: 2, VideoDurationSeconds: 60, Platform: "reels", Tier: TierAdvanced}
	without := calc.Quote(base).Total
	for _, id := range []string{"optLegenda", "optFundo", "optThumbnail", "optIdentidade"} {
		req := base
		req.Extras = []string{id}
		with := calc.Quote(req).Total
		require.True(t, with.GreaterThanOrEqual(without), "extra %s dropped total from %s to %s", id, without, with)
	}
}

func TestQuoteDuplicateExtrasCountOnce(t *testing.T) {
	calc := newTestCalculator()
	base := Request{PhotoCount: 1, VideoCount: 1, VideoDurationSeconds: 15, Platform: "reels", Tier: TierAdvanced}
	once := base
	once.Extras = []string{"optLegenda"}
	twice := base
	twice.Extras = []string{"optLegenda", "optLegenda"}
	require.True(t, calc.Quote(once).Total.Equal(calc.Quote(twice).Total))
}

func TestQuoteUrgentExtraSpeedsDelivery(t *testing.T) {
	calc := newTestCalculator()
	base := Request{PhotoCount: 10, VideoCount: 2, VideoDurationSeconds: 60, Platform: "reels", Tier: TierAdvanced}
	relaxed := calc.Quote(base)

	urgent := base
	urgent.Extras = []string{UrgentExtraID}
	rushed := calc.Quote(urgent)
	require.True(t, rushed.Total.GreaterThan(relaxed.Total), "urgent extra must be charged")
	require.Equal(t, "55min", relaxed.Eta)
	require.Equal(t, "1h10", rushed.Eta)

	// The urgent flag alone also works, without the paid extra.
	flagged := base
	flagged.Urgent = true
	fast := calc.Quote(flagged)
	require.True(t, fast.Total.Equal(relaxed.Total))
	require.Equal(t, "35min", fast.Eta)
}

func TestQuoteUnknownPlatformAndTierFallBack(t *testing.T) {
	calc := newTestCalculator()
	known := calc.Quote(Request{VideoCount: 1, VideoDurationSeconds: 15, Platform: "reels", Tier: TierAdvanced})
	unknown := calc.Quote(Request{VideoCount: 1, VideoDurationSeconds: 15, Platform: "myspace", Tier: Tier("grandmaster")})
	require.True(t, known.Total.Equal(unknown.Total))
	require.Equal(t, TierAdvanced, unknown.Tier)
}

func TestQuoteClampsCounts(t *testing.T) {
	calc := newTestCalculator()
	max := calc.Quote(Request{PhotoCount: MaxCount, VideoDurationSeconds: 15, Tier: TierAdvanced})
	over := calc.Quote(Request{PhotoCount: MaxCount + 500, VideoDurationSeconds: 15, Tier: TierAdvanced})
	require.True(t, max.Total.Equal(over.Total))
}
