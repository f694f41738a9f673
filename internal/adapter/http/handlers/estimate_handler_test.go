package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chennai_builders/internal/usecase"

	"github.com/gin-gonic/gin"
)

func TestEstimateHandler_ComputeEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// The engine is pure, so the handler tests run it for real.
	newRouter := func() *gin.Engine {
		h := NewEstimateHandler(usecase.NewEstimateUseCase())
		r := gin.New()
		r.POST("/v1/estimates", h.ComputeEstimate)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		r := newRouter()

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown floor choice", func(t *testing.T) {
		r := newRouter()

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"floor_choice":"Ground + 9"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "UNKNOWN_FLOOR_CHOICE" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown line item", func(t *testing.T) {
		r := newRouter()

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"quantities":[{"item_id":"swimming-pool","value":"10"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "LINE_ITEM_NOT_FOUND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("empty payload uses defaults", func(t *testing.T) {
		r := newRouter()

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["package_id"] != "standard" {
			t.Fatalf("expected default package, got %s", w.Body.String())
		}
		if body["active_floor_count"] != float64(3) {
			t.Fatalf("expected 3 active floors, got %s", w.Body.String())
		}
		if body["grand_total"] != "0" {
			t.Fatalf("expected zero grand total, got %s", w.Body.String())
		}
	})

	t.Run("success with full payload", func(t *testing.T) {
		r := newRouter()

		payload := `{
			"package_id": "premium",
			"floor_choice": "Ground + 1",
			"quantities": [
				{"item_id": "ground-floor", "value": "1000"},
				{"item_id": "first-floor", "value": "800"},
				{"item_id": "water-sump", "value": "3000"},
				{"item_id": "compound-wall", "value": "100"}
			]
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["floor_total"] != "4500000" {
			t.Fatalf("unexpected floor total: %s", w.Body.String())
		}
		if body["utility_total"] != "105000" {
			t.Fatalf("unexpected utility total: %s", w.Body.String())
		}
		if body["compound_total"] != "185000" {
			t.Fatalf("unexpected compound total: %s", w.Body.String())
		}
		if body["grand_total"] != "4790000" {
			t.Fatalf("unexpected grand total: %s", w.Body.String())
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrUnknownFloorChoice); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrLineItemNotFound); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
