package usecase

import (
	"errors"
	"strings"

	"chennai_builders/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownFloorChoice = errors.New("unknown floor choice")
	ErrLineItemNotFound   = errors.New("line item not found")
)

// IEstimateUseCase is the construction cost estimation engine.
//
// Every operation is pure: no I/O, no hidden state. The caller owns the
// line item collection and the current package/floor selection; the
// engine only maps inputs to outputs, so identical inputs always yield
// identical estimates.

type IEstimateUseCase interface {
	SelectPackage(packageID string) entities.Package
	ResolveActiveFloorCount(floorChoice string) (int, error)
	ApplyQuantity(items []entities.LineItem, itemID, raw string) ([]entities.LineItem, error)
	ComputeEstimate(pkg entities.Package, items []entities.LineItem, activeFloorCount int) entities.Estimate
}

type EstimateUseCase struct{}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase() *EstimateUseCase {
	return &EstimateUseCase{}
}

// SelectPackage resolves a catalog package by id. An empty or unknown
// id falls back to the Standard package, the calculator's preselected
// tier. The fallback is deliberate: package selection comes from a
// fixed dropdown, so an out-of-catalog value is treated as "no
// selection", not as an error.
func (u *EstimateUseCase) SelectPackage(packageID string) entities.Package {
	packageID = strings.TrimSpace(packageID)
	catalog := entities.PackageCatalog()
	for _, p := range catalog {
		if p.ID == packageID {
			return p
		}
	}
	for _, p := range catalog {
		if p.ID == entities.DefaultPackageID {
			return p
		}
	}
	// Unreachable while the catalog contains the default tier.
	return catalog[0]
}

// ResolveActiveFloorCount maps a floor choice ("Ground + 2") to the
// number of floor line items that count towards the estimate. An empty
// choice falls back to the default plan; a non-empty unrecognized
// choice is ErrUnknownFloorChoice rather than silently including all
// floors.
func (u *EstimateUseCase) ResolveActiveFloorCount(floorChoice string) (int, error) {
	floorChoice = strings.TrimSpace(floorChoice)
	if floorChoice == "" {
		floorChoice = entities.DefaultFloorChoice
	}
	count, ok := entities.FloorPlanCounts()[floorChoice]
	if !ok {
		return 0, ErrUnknownFloorChoice
	}
	return count, nil
}

// ApplyQuantity sets the quantity of one line item from raw user text
// and returns the updated collection; all other items are preserved
// unchanged. Non-numeric and negative input coerces to zero — typed-out
// numeric input is forgiving by contract, never an error. Only an
// unknown item id fails.
func (u *EstimateUseCase) ApplyQuantity(items []entities.LineItem, itemID, raw string) ([]entities.LineItem, error) {
	itemID = strings.TrimSpace(itemID)

	updated := make([]entities.LineItem, len(items))
	copy(updated, items)

	for i := range updated {
		if updated[i].ID == itemID {
			updated[i].Quantity = parseQuantity(raw)
			return updated, nil
		}
	}
	return nil, ErrLineItemNotFound
}

func parseQuantity(raw string) decimal.Decimal {
	q, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || q.IsNegative() {
		return decimal.Zero
	}
	return q
}

// ComputeEstimate derives the cost breakdown for the given inputs.
//
// Floor items at floor-position >= activeFloorCount are excluded from
// both the per-item costs and every total, regardless of their stored
// quantity. Included floor items are priced at the package rate;
// utility and compound items keep their fixed catalog rates.
func (u *EstimateUseCase) ComputeEstimate(pkg entities.Package, items []entities.LineItem, activeFloorCount int) entities.Estimate {
	est := entities.Estimate{
		PackageID:        pkg.ID,
		ActiveFloorCount: activeFloorCount,
		Items:            make([]entities.ItemCost, 0, len(items)),
		FloorTotal:       decimal.Zero,
		UtilityTotal:     decimal.Zero,
		CompoundTotal:    decimal.Zero,
		GrandTotal:       decimal.Zero,
	}

	floorPos := 0
	for _, item := range items {
		rate := item.Rate
		if item.Category == entities.CategoryFloor {
			pos := floorPos
			floorPos++
			if pos >= activeFloorCount {
				continue
			}
			rate = pkg.Rate
		}

		cost := item.Quantity.Mul(rate)
		est.Items = append(est.Items, entities.ItemCost{
			ItemID:   item.ID,
			Label:    item.Label,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Category: item.Category,
			Rate:     rate,
			Cost:     cost,
		})

		switch item.Category {
		case entities.CategoryFloor:
			est.FloorTotal = est.FloorTotal.Add(cost)
		case entities.CategoryUtility:
			est.UtilityTotal = est.UtilityTotal.Add(cost)
		case entities.CategoryCompound:
			est.CompoundTotal = est.CompoundTotal.Add(cost)
		}
	}

	est.GrandTotal = est.FloorTotal.Add(est.UtilityTotal).Add(est.CompoundTotal)
	return est
}
