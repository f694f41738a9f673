package response

import "chennai_builders/internal/domain/entities"

type PackageResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Rate        string `json:"rate"`
}

type LineItemResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
	// Rate is empty for floor items; their rate follows the selected
	// package.
	Rate string `json:"rate,omitempty"`
}

// CatalogResponse is everything a client needs to render the
// calculator: pricing tiers, calculator rows, floor plan options and
// the documented defaults.
type CatalogResponse struct {
	Packages           []PackageResponse  `json:"packages"`
	LineItems          []LineItemResponse `json:"line_items"`
	FloorChoices       []string           `json:"floor_choices"`
	DefaultPackageID   string             `json:"default_package_id"`
	DefaultFloorChoice string             `json:"default_floor_choice"`
}

func NewCatalogResponse() CatalogResponse {
	pkgs := make([]PackageResponse, 0, 3)
	for _, p := range entities.PackageCatalog() {
		pkgs = append(pkgs, PackageResponse{ID: p.ID, DisplayName: p.DisplayName, Rate: renderAmount(p.Rate)})
	}

	items := make([]LineItemResponse, 0, 8)
	for _, it := range entities.LineItemCatalog() {
		li := LineItemResponse{ID: it.ID, Label: it.Label, Category: string(it.Category), Unit: string(it.Unit)}
		if it.Category != entities.CategoryFloor {
			li.Rate = renderAmount(it.Rate)
		}
		items = append(items, li)
	}

	return CatalogResponse{
		Packages:           pkgs,
		LineItems:          items,
		FloorChoices:       entities.FloorChoices(),
		DefaultPackageID:   entities.DefaultPackageID,
		DefaultFloorChoice: entities.DefaultFloorChoice,
	}
}
