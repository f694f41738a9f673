package response

import (
	"chennai_builders/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Amounts are serialized as plain decimal strings; rounding happens
// here and nowhere upstream.

type ItemCostResponse struct {
	ItemID   string `json:"item_id"`
	Label    string `json:"label"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Rate     string `json:"rate"`
	Cost     string `json:"cost"`
}

type EstimateResponse struct {
	PackageID        string             `json:"package_id"`
	ActiveFloorCount int                `json:"active_floor_count"`
	Items            []ItemCostResponse `json:"items"`
	FloorTotal       string             `json:"floor_total"`
	UtilityTotal     string             `json:"utility_total"`
	CompoundTotal    string             `json:"compound_total"`
	GrandTotal       string             `json:"grand_total"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]ItemCostResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, ItemCostResponse{
			ItemID:   it.ItemID,
			Label:    it.Label,
			Quantity: it.Quantity.String(),
			Unit:     string(it.Unit),
			Category: string(it.Category),
			Rate:     renderAmount(it.Rate),
			Cost:     renderAmount(it.Cost),
		})
	}
	return EstimateResponse{
		PackageID:        e.PackageID,
		ActiveFloorCount: e.ActiveFloorCount,
		Items:            items,
		FloorTotal:       renderAmount(e.FloorTotal),
		UtilityTotal:     renderAmount(e.UtilityTotal),
		CompoundTotal:    renderAmount(e.CompoundTotal),
		GrandTotal:       renderAmount(e.GrandTotal),
	}
}

func renderAmount(d decimal.Decimal) string {
	return d.RoundBank(2).String()
}
