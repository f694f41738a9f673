package request

import "testing"

func TestEstimateRequest_Resolvers(t *testing.T) {
	r := EstimateRequest{PackageID: " premium ", FloorChoice: " Ground + 1 "}
	if got := r.ResolvePackageID(); got != "premium" {
		t.Fatalf("expected premium, got %q", got)
	}
	if got := r.ResolveFloorChoice(); got != "Ground + 1" {
		t.Fatalf("expected Ground + 1, got %q", got)
	}

	r2 := EstimateRequest{PackageID: "   ", FloorChoice: "   "}
	if got := r2.ResolvePackageID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := r2.ResolveFloorChoice(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestContactRequest_ResolveRequestID(t *testing.T) {
	r := ContactRequest{RequestID: " req-1 "}
	if got := r.ResolveRequestID(); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}

	r2 := ContactRequest{RequestID: "   "}
	if got := r2.ResolveRequestID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestContactRequest_ToContactFields(t *testing.T) {
	r := ContactRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Phone:    "+91 98765 43210",
		Location: "Chennai",
		LandArea: "1200 sqft",
	}

	fields := r.ToContactFields("Premium", "Ground + 1")
	if fields.Name != "Priya" || fields.Email != "priya@example.com" {
		t.Fatalf("unexpected identity fields: %+v", fields)
	}
	if fields.PackageName != "Premium" || fields.FloorChoice != "Ground + 1" {
		t.Fatalf("expected resolved selection, got %+v", fields)
	}
	if fields.LandArea != "1200 sqft" {
		t.Fatalf("unexpected land area: %q", fields.LandArea)
	}
}
