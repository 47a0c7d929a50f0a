package pricing

import "github.com/shopspring/decimal"

// EtaNone is shown when there is nothing to price.
const EtaNone = "—"

// etaSteps is the full ladder of delivery windows, fastest first. Urgent
// orders move one step up it.
var etaSteps = []string{"35min", "55min", "1h10", "1h25", "1h45", "2h20", "3h30", "6h00"}

var etaThresholds = []struct {
	limit decimal.Decimal
	label string
}{
	{decimal.NewFromInt(120), "35min"},
	{decimal.NewFromInt(250), "55min"},
	{decimal.NewFromInt(400), "1h25"},
	{decimal.NewFromInt(700), "2h20"},
	{decimal.NewFromInt(1000), "3h30"},
}

// EstimateDelivery maps a final order total to a human-readable delivery
// window. Urgent orders get the next faster window, never below 35min.
func EstimateDelivery(total decimal.Decimal, urgent bool) string {
	eta := "6h00"
	for _, t := range etaThresholds {
		if total.LessThanOrEqual(t.limit) {
			eta = t.label
			break
		}
	}
	if urgent {
		for i, step := range etaSteps {
			if step == eta && i > 0 {
				eta = etaSteps[i-1]
				break
			}
		}
	}
	return eta
}
