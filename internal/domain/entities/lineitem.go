package entities

import "github.com/shopspring/decimal"

// Category classifies a line item by how its rate is resolved:
// floor items are priced by the selected package, utility and compound
// items keep their fixed catalog rates.

type Category string

const (
	CategoryFloor    Category = "floor"
	CategoryUtility  Category = "utility"
	CategoryCompound Category = "compound"
)

// Unit is the billable unit surfaced to the user.
type Unit string

const (
	UnitSqft  Unit = "sqft"
	UnitLitre Unit = "litre"
	UnitRFT   Unit = "RFT"
)

// LineItem is one billable quantity of the cost calculator. Only
// Quantity changes at runtime, driven by user input; everything else is
// catalog data.
type LineItem struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Category Category        `json:"category"`
	Unit     Unit            `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
	// Rate is the fixed rate for utility/compound items. Floor items
	// ignore it; their effective rate comes from the selected package.
	Rate decimal.Decimal `json:"rate"`
}

const (
	LineItemGroundFloor  = "ground-floor"
	LineItemFirstFloor   = "first-floor"
	LineItemSecondFloor  = "second-floor"
	LineItemThirdFloor   = "third-floor"
	LineItemWaterSump    = "water-sump"
	LineItemSepticTank   = "septic-tank"
	LineItemCompoundWall = "compound-wall"
)

// LineItemCatalog returns the calculator rows in display order, all
// quantities zeroed.
func LineItemCatalog() []LineItem {
	return []LineItem{
		{ID: LineItemGroundFloor, Label: "Area for Ground Floor", Category: CategoryFloor, Unit: UnitSqft},
		{ID: LineItemFirstFloor, Label: "Area for First Floor", Category: CategoryFloor, Unit: UnitSqft},
		{ID: LineItemSecondFloor, Label: "Area for Second Floor", Category: CategoryFloor, Unit: UnitSqft},
		{ID: LineItemThirdFloor, Label: "Area for Third Floor", Category: CategoryFloor, Unit: UnitSqft},
		{ID: LineItemWaterSump, Label: "Size of RCC Water Sump (3000 litre)", Category: CategoryUtility, Unit: UnitLitre, Rate: decimal.NewFromInt(35)},
		{ID: LineItemSepticTank, Label: "Size of Septic Tank (10000 litre)", Category: CategoryUtility, Unit: UnitLitre, Rate: decimal.NewFromInt(20)},
		{ID: LineItemCompoundWall, Label: "Compound Wall (Height 5ft)", Category: CategoryCompound, Unit: UnitRFT, Rate: decimal.NewFromInt(1850)},
	}
}

// DefaultFloorChoice is the floor plan preselected by the calculator.
const DefaultFloorChoice = "Ground + 2"

// FloorChoices returns the floor plan options in display order.
func FloorChoices() []string {
	return []string{"Ground", "Ground + 1", "Ground + 2", "Ground + 3"}
}

// FloorPlanCounts maps a floor choice to the number of floor line items
// treated as active, in catalog order (first N).
func FloorPlanCounts() map[string]int {
	return map[string]int{
		"Ground":     1,
		"Ground + 1": 2,
		"Ground + 2": 3,
		"Ground + 3": 4,
	}
}
