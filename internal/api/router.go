package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	mux.HandleFunc("/", a.RootHandler)
	mux.HandleFunc("/api/health", a.HealthHandler)

	// Ingestion endpoints
	mux.HandleFunc("/api/upload-resume", a.UploadResumeHandler)
	mux.HandleFunc("/api/analyze-job", a.AnalyzeJobHandler)

	// Matching endpoints
	mux.HandleFunc("/api/match", a.MatchHandler)
	mux.HandleFunc("/api/match/", a.MatchDetailHandler)

	// Listing endpoints
	mux.HandleFunc("/api/resumes", a.ListResumesHandler)
	mux.HandleFunc("/api/jobs", a.ListJobsHandler)
	mux.HandleFunc("/api/matches", a.ListMatchesHandler)

	return mux
}
