package request

import "strings"

// QuantityInput carries one line item quantity as the user typed it.
// Values stay strings end-to-end so the engine's coercion contract
// (non-numeric/negative -> 0) applies to API input too.
type QuantityInput struct {
	ItemID string `json:"item_id" binding:"required"`
	Value  string `json:"value"`
}

// EstimateRequest is the input of the cost calculator: a package
// selection, a floor plan and the typed-in quantities. Package and
// floor choice are optional; the engine falls back to its documented
// defaults.
type EstimateRequest struct {
	PackageID   string          `json:"package_id"`
	FloorChoice string          `json:"floor_choice"`
	Quantities  []QuantityInput `json:"quantities"`
}

func (r EstimateRequest) ResolvePackageID() string {
	return strings.TrimSpace(r.PackageID)
}

func (r EstimateRequest) ResolveFloorChoice() string {
	return strings.TrimSpace(r.FloorChoice)
}
