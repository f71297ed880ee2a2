// Package site serves the published snapshot documents for local preview.
// It is a static file server plus health and metrics endpoints, not a
// query API: every document it serves was produced by the snapshot writer.
package site

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gravina/gamenight/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sentinel kinds for site errors.
var (
	ErrServe = errors.New("preview site serve failed")
)

// Register attaches the preview routes to mux, serving files from publicDir.
func Register(_ context.Context, mux *http.ServeMux, publicDir string) {
	if mux == nil {
		panic("mux is nil")
	}

	files := http.FileServer(http.Dir(publicDir))
	mux.Handle("/", countRequests(files))
	mux.HandleFunc("/healthz", handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
}

// handleHealth reports liveness as a small JSON document.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// statusRecorder captures the response code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// countRequests records one metric per served file request.
func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.RecordHTTPRequest(r.URL.Path, strconv.Itoa(rec.status))
	})
}
