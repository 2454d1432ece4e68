package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type registrarFunc func(mux *http.ServeMux)

func (f registrarFunc) Register(mux *http.ServeMux) { f(mux) }

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	h := NewHandler(zerolog.Nop(), prometheus.NewRegistry(), nil)

	rec := serve(h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPing(t *testing.T) {
	healthy := PingerFunc(func(context.Context) error { return nil })
	down := PingerFunc(func(context.Context) error { return errors.New("connection refused") })

	h := NewHandler(zerolog.Nop(), nil, map[string]Pinger{"postgres": healthy, "redis": healthy})
	rec := serve(h, "/v1/ping")
	assert.Equal(t, http.StatusOK, rec.Code)

	h = NewHandler(zerolog.Nop(), nil, map[string]Pinger{"postgres": healthy, "redis": down})
	rec = serve(h, "/v1/ping")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "redis: connection refused")
}

func TestMetricsUsesGatherer(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "flagquiz_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	rec := serve(NewHandler(zerolog.Nop(), reg, nil), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "flagquiz_test_total 1")
}

func TestFeatureRoutesMounted(t *testing.T) {
	routes := registrarFunc(func(mux *http.ServeMux) {
		mux.HandleFunc("GET /v1/hello", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	})

	rec := serve(NewHandler(zerolog.Nop(), nil, nil, routes), "/v1/hello")
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
