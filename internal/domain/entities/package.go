package entities

import "github.com/shopspring/decimal"

// Package is a construction pricing tier. The rate applies per sqft of
// floor area; non-floor line items carry their own fixed rates.
//
// The catalog is static configuration: three tiers, defined at process
// start, never mutated at runtime.

type Package struct {
	ID          string          `json:"id"`
	DisplayName string          `json:"display_name"`
	Rate        decimal.Decimal `json:"rate"`
}

const (
	PackageIDBasic    = "basic"
	PackageIDStandard = "standard"
	PackageIDPremium  = "premium"

	// DefaultPackageID is the fallback when a selection does not match
	// any catalog entry (the site preselects Standard).
	DefaultPackageID = PackageIDStandard
)

// PackageCatalog returns the pricing tiers in display order.
func PackageCatalog() []Package {
	return []Package{
		{ID: PackageIDBasic, DisplayName: "Basic Package @ ₹1500/sqft", Rate: decimal.NewFromInt(1500)},
		{ID: PackageIDStandard, DisplayName: "Standard Package @ ₹2099/sqft", Rate: decimal.NewFromInt(2099)},
		{ID: PackageIDPremium, DisplayName: "Premium Package @ ₹2500/sqft", Rate: decimal.NewFromInt(2500)},
	}
}
