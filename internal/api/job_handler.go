package api

import (
	"encoding/json"
	"net/http"

	"resume-matcher/internal/storage"
)

type AnalyzeJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AnalyzeJobResponse struct {
	Message                string   `json:"message"`
	JobID                  string   `json:"job_id"`
	RequiredSkills         []string `json:"required_skills"`
	RequiredExperience     []string `json:"required_experience"`
	RequiredQualifications []string `json:"required_qualifications"`
	ExtractedKeywords      []string `json:"extracted_keywords"`
}

// AnalyzeJobHandler runs LLM requirement extraction over a job description.
// Empty title and description are accepted; the record is still created.
// @Summary Analyze a job description
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body AnalyzeJobRequest true "Job description payload"
// @Success 200 {object} AnalyzeJobResponse
// @Failure 500 {object} map[string]string
// @Router /analyze-job [post]
func (a *API) AnalyzeJobHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req AnalyzeJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	info, err := a.analyzer.ExtractJobInfo(r.Context(), req.Description)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error analyzing job description: "+err.Error())
		return
	}

	job := storage.NewJob(req.Title, req.Description, info)
	if err := a.store.SaveJob(r.Context(), job); err != nil {
		writeError(w, http.StatusInternalServerError, "Error analyzing job description: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeJobResponse{
		Message:                "Job description analyzed successfully",
		JobID:                  job.ID,
		RequiredSkills:         job.RequiredSkills,
		RequiredExperience:     job.RequiredExperience,
		RequiredQualifications: job.RequiredQualifications,
		ExtractedKeywords:      job.ExtractedKeywords,
	})
}

// ListJobsHandler returns all analyzed job descriptions
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Success 200 {object} map[string][]storage.Job
// @Failure 500 {object} map[string]string
// @Router /jobs [get]
func (a *API) ListJobsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	jobs, err := a.store.ListJobs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error getting jobs: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"jobs": jobs})
}
