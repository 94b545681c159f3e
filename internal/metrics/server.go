// Package metrics holds the resolver's Prometheus counters and the HTTP
// server that exposes them.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shortreel/douyin-resolver/internal/config"
)

// NewHTTPServer creates the HTTP server exposing the resolver's metrics at
// /metrics. A zero port falls back to the configured metrics port.
func NewHTTPServer(address string, port int) *http.Server {
	if port == 0 {
		port = config.GetConfig().Metrics.Port
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", address, port),
		Handler: mux,
	}
}
