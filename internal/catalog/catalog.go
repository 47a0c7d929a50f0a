// Package catalog holds the fixed service packages and prices them per
// tier. The catalog is read-only configuration loaded once at startup.
package catalog

import "github.com/shopspring/decimal"

// Package is a fixed-price catalog entry. Base prices are quoted at the
// advanced tier and discounted downward for the others.
type Package struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"basePrice"`
	Eta       string          `json:"eta"`
	Items     []string        `json:"items"`
}

// Default returns the built-in package catalog, ordered by id.
func Default() []Package {
	price := decimal.NewFromFloat
	return []Package{
		{ID: 1, Name: "Starter Foto", BasePrice: price(27.40), Eta: "35min", Items: []string{"2 Fotos (básicas)", "Cor + nitidez", "Ajuste de luz/contraste"}},
		{ID: 2, Name: "Duo Foto", BasePrice: price(41.80), Eta: "35min", Items: []string{"3 Fotos (básicas)", "Cor + nitidez", "Padronização simples"}},
		{ID: 3, Name: "Foto Pro 3", BasePrice: price(53.60), Eta: "55min", Items: []string{"4 Fotos (pro)", "Ajustes finos + cor", "Retoque leve (detalhes)", "Remoção de manchas (leve)", "1 revisão inclusa"}},
		{ID: 4, Name: "Vídeo Short 1min", BasePrice: price(63.90), Eta: "55min", Items: []string{"2 Vídeos (até 1min)", "Cortes + ritmo", "Limpeza de áudio leve", "Legenda básica (opcional)", "1 revisão inclusa"}},
		{ID: 5, Name: "Foto Pack 4", BasePrice: price(73.50), Eta: "1h10", Items: []string{"5 Fotos (pro)", "Cor + detalhes", "Retoque leve (pele/objetos)", "Nitidez premium", "1 revisão inclusa"}},
		{ID: 6, Name: "Short Duo 1m30", BasePrice: price(86.40), Eta: "1h25", Items: []string{"3 Vídeos (até 1m30)", "Cortes + transições simples", "Correção de cor leve", "SFX leves (opcional)", "1 revisão inclusa"}},
		{ID: 7, Name: "Combo Social", BasePrice: price(96.80), Eta: "1h45", Items: []string{"2 Fotos + 1 Vídeo (até 1min)", "Look cinematográfico leve", "Correção de cor", "Legenda simples (opcional)", "1 revisão inclusa"}},
		{ID: 8, Name: "Foto Pack 5", BasePrice: price(108.90), Eta: "2h20", Items: []string{"6 Fotos (pro)", "Padronização de cor", "Retoque leve + nitidez premium", "Remoção de objetos simples (1x)", "1 revisão inclusa"}},
		{ID: 9, Name: "Short Trio 2min", BasePrice: price(132.70), Eta: "2h20", Items: []string{"4 Vídeos (até 2min)", "Cor + ritmo", "Efeitos sonoros leves", "Legenda básica (opcional)", "1 revisão inclusa"}},
		{ID: 10, Name: "Foto Pack 8", BasePrice: price(151.40), Eta: "3h30", Items: []string{"9 Fotos (pro)", "Cor + retoques leves", "Remoção de objetos simples (1x)", "Retoque avançado (selecionado)", "1 revisão inclusa"}},
		{ID: 11, Name: "Short 5 3min", BasePrice: price(176.90), Eta: "3h30", Items: []string{"6 Vídeos (até 3min)", "Cortes + cor", "Áudio: redução de ruído", "Legenda básica (opcional)", "2 revisões inclusas"}},
		{ID: 12, Name: "Creator Mix Pro", BasePrice: price(197.80), Eta: "3h30", Items: []string{"12 Fotos + 1 Vídeo (até 5min)", "Padronização completa", "Thumbnail premium (1x)", "Export 1080p/4K (se tiver)", "2 revisões inclusas"}},
		{ID: 13, Name: "Vídeo Médio 8min", BasePrice: price(221.60), Eta: "3h30", Items: []string{"1 Vídeo (até 8min)", "Cor + transições", "Áudio + legenda simples", "Motion text leve (opcional)", "2 revisões inclusas"}},
		{ID: 14, Name: "Vídeo Longo 15min", BasePrice: price(259.40), Eta: "6h00", Items: []string{"1 Vídeo (até 15min)", "Edição avançada + ritmo", "Sound design (leve)", "Thumbnail (1x)", "3 revisões inclusas"}},
		{ID: 15, Name: "Premium Creator+", BasePrice: price(329.90), Eta: "6h00", Items: []string{"18 Fotos (pro)", "4 Vídeos (até 15min cada)", "Look premium + revisão", "Prioridade (fila rápida)", "3 revisões inclusas"}},
	}
}
