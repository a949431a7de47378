// README: Envelope-contract tests for the pricing endpoints.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"velo/internal/http/handlers"
	"velo/internal/modules/pricing"
	"velo/internal/types"
)

type fakePricingStore struct {
	byCity map[int64]pricing.Pricing
	nextID int64
}

func newFakePricingStore() *fakePricingStore {
	return &fakePricingStore{byCity: map[int64]pricing.Pricing{}, nextID: 1}
}

func (f *fakePricingStore) GetByCity(_ context.Context, cityID int64) (pricing.Pricing, error) {
	p, ok := f.byCity[cityID]
	if !ok {
		return pricing.Pricing{}, types.NotFound("pricing for city_id")
	}
	return p, nil
}

func (f *fakePricingStore) Add(_ context.Context, p pricing.Pricing) (int64, error) {
	if _, exists := f.byCity[p.CityID]; exists {
		return 0, types.ErrConstraint
	}
	p.ID = f.nextID
	f.nextID++
	f.byCity[p.CityID] = p
	return p.ID, nil
}

func (f *fakePricingStore) UpdateByCity(_ context.Context, p pricing.Pricing) error {
	old, ok := f.byCity[p.CityID]
	if !ok {
		return types.NotFound("city_id")
	}
	p.ID = old.ID
	f.byCity[p.CityID] = p
	return nil
}

func (f *fakePricingStore) DeleteByCity(_ context.Context, cityID int64) error {
	if _, ok := f.byCity[cityID]; !ok {
		return types.NotFound("city_id")
	}
	delete(f.byCity, cityID)
	return nil
}

func buildPricingRouter(store *fakePricingStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewPricingHandler(pricing.NewService(store))
	r := gin.New()
	r.GET("/api/v1/pricing/city/:city_id", h.GetByCity)
	r.POST("/api/v1/pricing", h.Create)
	r.PUT("/api/v1/pricing", h.Update)
	r.DELETE("/api/v1/pricing/:city_id", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func TestPricingCreateEnvelope(t *testing.T) {
	r := buildPricingRouter(newFakePricingStore())

	w := doJSON(r, http.MethodPost, "/api/v1/pricing", map[string]any{
		"city_id": 1, "start_fee": 10, "minute_fee": 3, "extra_fee": 10, "discount": 10,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env["count"].(float64) != 1 || env["message"] != "Ok" {
		t.Errorf("envelope = %v", env)
	}
	if env["newId"].(float64) != 1 {
		t.Errorf("newId = %v, want 1", env["newId"])
	}
}

func TestPricingCreateDuplicateCity(t *testing.T) {
	store := newFakePricingStore()
	store.byCity[1] = pricing.Pricing{ID: 1, CityID: 1}
	r := buildPricingRouter(store)

	w := doJSON(r, http.MethodPost, "/api/v1/pricing", map[string]any{"city_id": 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env["count"].(float64) != 0 || env["newId"].(float64) != -1 {
		t.Errorf("failure envelope = %v", env)
	}
}

func TestPricingGetByCity(t *testing.T) {
	store := newFakePricingStore()
	store.byCity[1] = pricing.Pricing{ID: 1, CityID: 1, StartFee: 10, MinuteFee: 3}
	r := buildPricingRouter(store)

	w := doJSON(r, http.MethodGet, "/api/v1/pricing/city/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var p pricing.Pricing
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.StartFee != 10 || p.MinuteFee != 3 {
		t.Errorf("pricing = %+v", p)
	}
}

func TestPricingGetMissingCity(t *testing.T) {
	r := buildPricingRouter(newFakePricingStore())

	w := doJSON(r, http.MethodGet, "/api/v1/pricing/city/9", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestPricingUpdateMissingCity(t *testing.T) {
	r := buildPricingRouter(newFakePricingStore())

	w := doJSON(r, http.MethodPut, "/api/v1/pricing", map[string]any{"city_id": 9, "start_fee": 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env["count"].(float64) != 0 {
		t.Errorf("failure envelope = %v", env)
	}
}

func TestPricingDelete(t *testing.T) {
	store := newFakePricingStore()
	store.byCity[1] = pricing.Pricing{ID: 1, CityID: 1}
	r := buildPricingRouter(store)

	w := doJSON(r, http.MethodDelete, "/api/v1/pricing/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env["count"].(float64) != 1 || env["message"] != "Ok" {
		t.Errorf("envelope = %v", env)
	}
	if len(store.byCity) != 0 {
		t.Error("row not deleted")
	}
}
