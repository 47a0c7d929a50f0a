package pricing

import "github.com/shopspring/decimal"

// Band prices the additional minutes of a long-form video up to a
// cumulative minute cap.
type Band struct {
	UpToMinutes int64
	PerMinute   decimal.Decimal
}

// Rates is the flat price configuration for ad-hoc orders. Catalog packages
// carry their own base prices; everything the custom calculator needs lives
// here.
type Rates struct {
	Photo   decimal.Decimal
	Video15 decimal.Decimal
	Video45 decimal.Decimal
	Video60 decimal.Decimal

	// LongBands apply only to the minutes after the first one, which the
	// Video60 unit already pays for.
	LongBands []Band

	// Platform multipliers; keys the client may send. Unknown platforms
	// price at 1.00.
	Platform map[string]decimal.Decimal
}

// DefaultRates returns the production price table.
func DefaultRates() Rates {
	return Rates{
		Photo:   decimal.NewFromFloat(18.40),
		Video15: decimal.NewFromFloat(16.90),
		Video45: decimal.NewFromFloat(24.90),
		Video60: decimal.NewFromFloat(29.90),
		LongBands: []Band{
			{UpToMinutes: 5, PerMinute: decimal.NewFromFloat(7.70)},
			{UpToMinutes: 20, PerMinute: decimal.NewFromFloat(5.60)},
			{UpToMinutes: 60, PerMinute: decimal.NewFromFloat(4.10)},
			{UpToMinutes: 120, PerMinute: decimal.NewFromFloat(3.20)},
			{UpToMinutes: 180, PerMinute: decimal.NewFromFloat(2.70)},
		},
		Platform: map[string]decimal.Decimal{
			"reels":         decimal.NewFromInt(1),
			"tiktok":        decimal.NewFromInt(1),
			"insta":         decimal.NewFromFloat(1.03),
			"shorts":        decimal.NewFromFloat(1.03),
			"ytlong":        decimal.NewFromFloat(1.05),
			"facebookreels": decimal.NewFromFloat(1.02),
			"kwai":          decimal.NewFromInt(1),
			"snap":          decimal.NewFromFloat(1.02),
			"pinterest":     decimal.NewFromFloat(1.02),
			"linkedin":      decimal.NewFromFloat(1.03),
			"x":             decimal.NewFromFloat(1.02),
		},
	}
}

// ExtraKind says which part of the order an extra option charges against.
type ExtraKind string

// Extra kinds. Video and photo extras multiply per unit; order extras are
// added once to the whole order.
const (
	ExtraKindVideo ExtraKind = "video"
	ExtraKindPhoto ExtraKind = "photo"
	ExtraKindOrder ExtraKind = "order"
)

// UrgentExtraID is the whole-order extra that also moves the delivery
// estimate one step faster.
const UrgentExtraID = "optUrgente"

// ExtraOption is a purchasable add-on for a custom order.
type ExtraOption struct {
	ID        string          `json:"id"`
	Label     string          `json:"label,omitempty"`
	Kind      ExtraKind       `json:"kind"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// DefaultExtras returns the production extras catalog.
func DefaultExtras() []ExtraOption {
	price := decimal.NewFromFloat
	return []ExtraOption{
		{ID: "optCorCine", Kind: ExtraKindVideo, UnitPrice: price(11.60)},
		{ID: "optLegenda", Kind: ExtraKindVideo, UnitPrice: price(11.60)},
		{ID: "optTransicoes", Kind: ExtraKindVideo, UnitPrice: price(9.40)},
		{ID: "optMotion", Kind: ExtraKindVideo, UnitPrice: price(11.60)},
		{ID: "optIntroOutro", Kind: ExtraKindVideo, UnitPrice: price(11.60)},
		{ID: "optEstabilizar", Kind: ExtraKindVideo, UnitPrice: price(11.60)},
		{ID: "optSpeedRamp", Kind: ExtraKindVideo, UnitPrice: price(9.40)},
		{ID: "optSFX", Kind: ExtraKindVideo, UnitPrice: price(9.40)},
		{ID: "optAudio", Kind: ExtraKindVideo, UnitPrice: price(11.60)},
		{ID: "optMusicSync", Kind: ExtraKindVideo, UnitPrice: price(9.90)},
		{ID: "optVoiceClean", Kind: ExtraKindVideo, UnitPrice: price(11.90)},
		{ID: "optRetoquePro", Kind: ExtraKindPhoto, UnitPrice: price(9.40)},
		{ID: "optPele", Kind: ExtraKindPhoto, UnitPrice: price(9.40)},
		{ID: "optFundo", Kind: ExtraKindPhoto, UnitPrice: price(11.60)},
		{ID: "optCoresFoto", Kind: ExtraKindPhoto, UnitPrice: price(9.40)},
		{ID: "optHDR", Kind: ExtraKindPhoto, UnitPrice: price(9.40)},
		{ID: "optObjeto", Kind: ExtraKindPhoto, UnitPrice: price(11.60)},
		{ID: "optTexto", Kind: ExtraKindPhoto, UnitPrice: price(9.40)},
		{ID: "optHook", Kind: ExtraKindVideo, UnitPrice: price(7.90)},
		{ID: "optCutsPro", Kind: ExtraKindVideo, UnitPrice: price(11.40)},
		{ID: "optColorMatch", Kind: ExtraKindVideo, UnitPrice: price(12.90)},
		{ID: "optVfxLite", Kind: ExtraKindVideo, UnitPrice: price(9.80)},
		{ID: "optReframe", Kind: ExtraKindVideo, UnitPrice: price(8.90)},
		{ID: "optCapStyle", Kind: ExtraKindVideo, UnitPrice: price(9.70)},
		{ID: "optDodgeBurn", Kind: ExtraKindPhoto, UnitPrice: price(12.40)},
		{ID: "optNoisePhoto", Kind: ExtraKindPhoto, UnitPrice: price(8.90)},
		{ID: "optBatchPreset", Kind: ExtraKindPhoto, UnitPrice: price(9.40)},
		{ID: "optBlurBG", Kind: ExtraKindPhoto, UnitPrice: price(11.60)},
		{ID: "optLensFix", Kind: ExtraKindPhoto, UnitPrice: price(9.90)},
		{ID: "optLogoDesign", Label: "Design de logo (1 conceito)", Kind: ExtraKindOrder, UnitPrice: price(34.90)},
		{ID: "optBrandKit", Label: "Kit de marca p/ redes (5 artes)", Kind: ExtraKindOrder, UnitPrice: price(54.90)},
		{ID: "optIdentidade", Label: "Identidade visual básica", Kind: ExtraKindOrder, UnitPrice: price(99.90)},
		{ID: "optLogoAnim", Label: "Logo animado (5–7s)", Kind: ExtraKindOrder, UnitPrice: price(59.90)},
		{ID: "optIntroAnim", Label: "Intro animada (até 7s)", Kind: ExtraKindOrder, UnitPrice: price(44.90)},
		{ID: "optLowerThirds", Label: "Lower thirds (pack 3)", Kind: ExtraKindOrder, UnitPrice: price(19.90)},
		{ID: "optTrilhaSimples", Label: "Trilha simples (biblioteca/licença)", Kind: ExtraKindOrder, UnitPrice: price(14.90)},
		{ID: "optSoundDesign", Label: "Sound design (SFX) básico", Kind: ExtraKindOrder, UnitPrice: price(19.90)},
		{ID: "optMixMaster", Label: "Mixagem + master (áudio)", Kind: ExtraKindOrder, UnitPrice: price(24.90)},
		{ID: "optThumbnail", Kind: ExtraKindOrder, UnitPrice: price(19.90)},
		{ID: UrgentExtraID, Kind: ExtraKindOrder, UnitPrice: price(29.90)},
		{ID: "optArtePeca", Label: "Arte / ilustração (1 peça)", Kind: ExtraKindOrder, UnitPrice: price(29.90)},
		{ID: "optArteIA", Label: "Arte em IA (pack 10 variações)", Kind: ExtraKindOrder, UnitPrice: price(19.90)},
		{ID: "optPackArtes", Label: "Pack de artes (3 peças)", Kind: ExtraKindOrder, UnitPrice: price(44.90)},
	}
}
