package entities

import "github.com/shopspring/decimal"

// ItemCost is one computed row of an estimate. Rate is the effective
// rate used for the computation (package rate for floor items).
type ItemCost struct {
	ItemID   string          `json:"item_id"`
	Label    string          `json:"label"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     Unit            `json:"unit"`
	Category Category        `json:"category"`
	Rate     decimal.Decimal `json:"rate"`
	Cost     decimal.Decimal `json:"cost"`
}

// Estimate is the computed cost breakdown for the current input state.
//
// It is derived, never stored: a pure function of {package, line item
// quantities, active floor count}. Items keeps catalog order; floor
// items beyond the active count are excluded entirely, not zeroed.
//
// Invariant: GrandTotal = FloorTotal + UtilityTotal + CompoundTotal.
type Estimate struct {
	PackageID        string          `json:"package_id"`
	ActiveFloorCount int             `json:"active_floor_count"`
	Items            []ItemCost      `json:"items"`
	FloorTotal       decimal.Decimal `json:"floor_total"`
	UtilityTotal     decimal.Decimal `json:"utility_total"`
	CompoundTotal    decimal.Decimal `json:"compound_total"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
}

// ContactFields carries the user-identifying inputs of a submission.
// Name, Email, Phone and Location are mandatory; the rest is optional
// context copied into the notification message.
type ContactFields struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	LandArea    string `json:"land_area"`
	FloorChoice string `json:"floor_choice"`
	PackageName string `json:"package_name"`
}

// ContactRequest is the validated submission payload handed to the
// notification gateway: contact fields plus the rendered estimate.
type ContactRequest struct {
	Fields  ContactFields `json:"fields"`
	Subject string        `json:"subject"`
	Message string        `json:"message"`
	// Date is a locale-aware long date (en-IN), e.g.
	// "Saturday, 30 August 2025".
	Date string `json:"date"`
}
