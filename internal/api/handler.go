package api

import (
	"encoding/json"
	"net/http"
	"time"

	"resume-matcher/internal/nlp"
	"resume-matcher/internal/storage"
)

type API struct {
	store       storage.Store
	analyzer    nlp.Analyzer
	maxUploadMB int64
}

// NewAPI wires the persistence gateway and the LLM-backed analyzer into the HTTP
// surface. Both come in as interfaces so handlers are testable without Postgres or a
// live model.
func NewAPI(store storage.Store, analyzer nlp.Analyzer, maxUploadMB int64) *API {
	return &API{
		store:       store,
		analyzer:    analyzer,
		maxUploadMB: maxUploadMB,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// RootHandler returns the service banner.
func (a *API) RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Resume and Job Description Matcher API",
		"version": "1.0.0",
	})
}

// HealthHandler reports liveness.
func (a *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
