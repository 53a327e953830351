package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"servit/handlers"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	hb := &handlers.HandlerBundle{
		AuthHandler:      handlers.NewAuthHandler(nil),
		AdminHandler:     handlers.NewAdminHandler(nil),
		CatalogHandler:   handlers.NewCatalogHandler(nil),
		PartnerHandler:   handlers.NewPartnerHandler(nil),
		UserHandler:      handlers.NewUserHandler(nil),
		BookingHandler:   handlers.NewBookingHandler(nil),
		DashboardHandler: handlers.NewDashboardHandler(nil),
	}
	r := gin.New()
	RegisterRoutes(r, hb)
	return r
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["ok"] != true {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter()
	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/admins"},
		{http.MethodGet, "/api/categories"},
		{http.MethodPost, "/api/partners/p1/verify"},
		{http.MethodDelete, "/api/users/u1"},
		{http.MethodGet, "/api/bookings"},
		{http.MethodGet, "/api/dashboard/stats"},
	}
	for _, p := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", p.method, p.path, w.Code)
			continue
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["ok"] != false || body["error"] != "No token provided" {
			t.Errorf("%s %s: unexpected body %s", p.method, p.path, w.Body.String())
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/categories", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.example.com" {
		t.Fatalf("expected the origin reflected, got %q", got)
	}
}
