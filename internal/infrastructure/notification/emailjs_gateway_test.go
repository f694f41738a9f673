package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chennai_builders/internal/domain/entities"
)

func contactRequestFixture() entities.ContactRequest {
	return entities.ContactRequest{
		Fields: entities.ContactFields{
			Name:  "Priya",
			Email: "priya@example.com",
			Phone: "+91 98765 43210",
		},
		Subject: "Construction Cost Estimate - Chennai",
		Message: "TOTAL ESTIMATED COST: ₹4610000",
		Date:    "Saturday, 30 August 2026",
	}
}

func TestNewEmailJSGateway(t *testing.T) {
	t.Run("missing configuration", func(t *testing.T) {
		t.Setenv("NOTIFICATION_GATEWAY_MOCK", "")
		t.Setenv("EMAILJS_MOCK", "")
		t.Setenv("EMAILJS_SERVICE_ID", "")
		t.Setenv("EMAILJS_TEMPLATE_ID", "")
		t.Setenv("EMAILJS_PUBLIC_KEY", "")

		if _, err := NewEmailJSGateway(); !errors.Is(err, ErrMissingEmailJSConfig) {
			t.Fatalf("expected ErrMissingEmailJSConfig, got %v", err)
		}
	})

	t.Run("mock mode skips configuration", func(t *testing.T) {
		t.Setenv("NOTIFICATION_GATEWAY_MOCK", "true")
		t.Setenv("EMAILJS_SERVICE_ID", "")

		g, err := NewEmailJSGateway()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := g.Send(context.Background(), contactRequestFixture()); err != nil {
			t.Fatalf("mock send failed: %v", err)
		}
	})
}

func TestEmailJSGateway_Send(t *testing.T) {
	newGateway := func(t *testing.T, endpoint string) *EmailJSGateway {
		t.Setenv("NOTIFICATION_GATEWAY_MOCK", "")
		t.Setenv("EMAILJS_MOCK", "")
		t.Setenv("EMAILJS_SERVICE_ID", "service_abc")
		t.Setenv("EMAILJS_TEMPLATE_ID", "template_xyz")
		t.Setenv("EMAILJS_PUBLIC_KEY", "public_123")
		t.Setenv("EMAILJS_ENDPOINT", endpoint)

		g, err := NewEmailJSGateway()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return g
	}

	t.Run("sends the wire payload", func(t *testing.T) {
		var got emailJSRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Fatalf("expected POST, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Fatalf("unexpected content type: %s", ct)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		g := newGateway(t, srv.URL)
		if err := g.Send(context.Background(), contactRequestFixture()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.ServiceID != "service_abc" || got.TemplateID != "template_xyz" || got.UserID != "public_123" {
			t.Fatalf("unexpected credentials in payload: %+v", got)
		}
		if got.TemplateParams.FromName != "Priya" || got.TemplateParams.FromEmail != "priya@example.com" {
			t.Fatalf("unexpected sender params: %+v", got.TemplateParams)
		}
		if !strings.Contains(got.TemplateParams.Message, "TOTAL ESTIMATED COST") {
			t.Fatalf("message not relayed: %+v", got.TemplateParams)
		}
	})

	t.Run("rejection surfaces status and detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("The user account is suspended"))
		}))
		defer srv.Close()

		g := newGateway(t, srv.URL)
		err := g.Send(context.Background(), contactRequestFixture())
		if err == nil {
			t.Fatalf("expected an error")
		}
		if !strings.Contains(err.Error(), "status=403") || !strings.Contains(err.Error(), "suspended") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unconfigured gateway refuses to send", func(t *testing.T) {
		var g *EmailJSGateway
		if err := g.Send(context.Background(), contactRequestFixture()); !errors.Is(err, ErrEmailJSGatewayNotConfigured) {
			t.Fatalf("expected ErrEmailJSGatewayNotConfigured, got %v", err)
		}
	})
}
