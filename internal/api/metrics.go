package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterMetrics serves g's metrics at /metrics on r.
func RegisterMetrics(r *mux.Router, g prometheus.Gatherer) {
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{})).Methods("GET")
}

// MetricsHandler returns a standalone handler for a dedicated metrics listener.
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	r := mux.NewRouter()
	RegisterMetrics(r, g)
	return r
}
