package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/growthtrack/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

func serveHealth(t *testing.T, checks httpx.HealthChecks) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr, resp
}

func TestHealthHandler(t *testing.T) {
	down := errors.New("down")
	tests := []struct {
		name       string
		checks     httpx.HealthChecks
		wantStatus int
		want       map[string]string
	}{
		{
			name:       "all healthy",
			checks:     httpx.HealthChecks{Store: &stubChecker{}, EventBus: &stubChecker{}},
			wantStatus: http.StatusOK,
			want:       map[string]string{"status": "ok", "store": "ok", "event_bus": "ok"},
		},
		{
			name:       "store down",
			checks:     httpx.HealthChecks{Store: &stubChecker{err: down}, EventBus: &stubChecker{}},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]string{"status": "degraded", "store": "unreachable", "event_bus": "ok"},
		},
		{
			name:       "event bus down",
			checks:     httpx.HealthChecks{Store: &stubChecker{}, EventBus: &stubChecker{err: down}},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]string{"status": "degraded", "store": "ok", "event_bus": "unreachable"},
		},
		{
			name:       "no event bus configured",
			checks:     httpx.HealthChecks{Store: &stubChecker{}},
			wantStatus: http.StatusOK,
			want:       map[string]string{"status": "ok", "store": "ok", "event_bus": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, resp := serveHealth(t, tt.checks)
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
			for k, v := range tt.want {
				if resp[k] != v {
					t.Errorf("%s: got %q, want %q", k, resp[k], v)
				}
			}
		})
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	rr, _ := serveHealth(t, httpx.HealthChecks{Store: &stubChecker{}, EventBus: &stubChecker{}})

	ct := rr.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json; charset=utf-8")
	}
}
