package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"metargb/datepicker-service/pkg/logger"
	"metargb/datepicker-service/pkg/metrics"
)

func TestLoggingAddsRequestID(t *testing.T) {
	log := logger.NewLogger("datepicker-test")
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	handler := Logging(log)(next)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/date/today", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if !called {
		t.Fatal("expected next handler to be called")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header to be set")
	}
	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204 to pass through, got %d", w.Code)
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS("*")(next)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/date/parse", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("expected allow-origin *, got %q", w.Header().Get("Access-Control-Allow-Origin"))
		}
		if w.Header().Get("Access-Control-Allow-Methods") == "" {
			t.Error("expected allow-methods header")
		}
	})

	t.Run("regular request keeps headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("expected CORS headers on regular responses")
		}
	})
}

func TestMetricsCountsRequests(t *testing.T) {
	m := metrics.NewMetricsWithRegistry("datepicker", prometheus.NewRegistry())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := Metrics(m)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/date/today", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	got := testutil.ToFloat64(m.RequestCounter.WithLabelValues("GET /api/v1/date/today", "404"))
	if got != 1 {
		t.Errorf("expected request counter 1, got %v", got)
	}
	inFlight := testutil.ToFloat64(m.RequestsInFlight.WithLabelValues("GET /api/v1/date/today"))
	if inFlight != 0 {
		t.Errorf("expected in-flight gauge back at 0, got %v", inFlight)
	}
}
