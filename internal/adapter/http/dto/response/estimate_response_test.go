package response

import (
	"testing"

	"chennai_builders/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromEstimate(t *testing.T) {
	e := entities.Estimate{
		PackageID:        "standard",
		ActiveFloorCount: 2,
		Items: []entities.ItemCost{
			{
				ItemID:   "ground-floor",
				Label:    "Area for Ground Floor",
				Category: entities.CategoryFloor,
				Unit:     entities.UnitSqft,
				Quantity: decimal.NewFromInt(1000),
				Rate:     decimal.NewFromInt(2099),
				Cost:     decimal.NewFromInt(2099000),
			},
		},
		FloorTotal:    decimal.NewFromInt(2099000),
		UtilityTotal:  decimal.Zero,
		CompoundTotal: decimal.Zero,
		GrandTotal:    decimal.NewFromInt(2099000),
	}

	res := FromEstimate(e)
	if res.PackageID != "standard" || res.ActiveFloorCount != 2 {
		t.Fatalf("unexpected header fields: %+v", res)
	}
	if len(res.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(res.Items))
	}
	it := res.Items[0]
	if it.ItemID != "ground-floor" || it.Quantity != "1000" || it.Rate != "2099" || it.Cost != "2099000" {
		t.Fatalf("unexpected item mapping: %+v", it)
	}
	if res.GrandTotal != "2099000" || res.UtilityTotal != "0" {
		t.Fatalf("unexpected totals: %+v", res)
	}
}

func TestFromLead(t *testing.T) {
	l := entities.Lead{
		ID: "req-1",
		Fields: entities.ContactFields{
			Name:     "Priya",
			Email:    "priya@example.com",
			Phone:    "+91 98765 43210",
			Location: "Chennai",
		},
		Subject: "Construction Cost Estimate - Chennai",
		Message: "New Construction Estimate Request:",
		Status:  entities.LeadStatusSent,
	}

	res := FromLead(l)
	if res.ID != "req-1" || res.Status != "sent" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Name != "Priya" || res.Location != "Chennai" {
		t.Fatalf("unexpected contact fields: %+v", res)
	}
	if res.Subject != l.Subject || res.Message != l.Message {
		t.Fatalf("unexpected payload fields: %+v", res)
	}
}
