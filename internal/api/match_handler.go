package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"resume-matcher/internal/nlp"
	"resume-matcher/internal/storage"
)

type MatchRequest struct {
	ResumeID string `json:"resume_id"`
	JobID    string `json:"job_id"`
}

type MatchResponse struct {
	Message             string       `json:"message"`
	MatchID             string       `json:"match_id"`
	OverallScore        float64      `json:"overall_score"`
	SkillsMatch         nlp.SubMatch `json:"skills_match"`
	ExperienceMatch     nlp.SubMatch `json:"experience_match"`
	QualificationsMatch nlp.SubMatch `json:"qualifications_match"`
	MatchedKeywords     []string     `json:"matched_keywords"`
	MissingSkills       []string     `json:"missing_skills"`
	Suggestions         []string     `json:"suggestions"`
	DetailedAnalysis    string       `json:"detailed_analysis"`
}

type MatchDetailResponse struct {
	Match  *storage.Match  `json:"match"`
	Resume *storage.Resume `json:"resume"`
	Job    *storage.Job    `json:"job"`
}

// MatchHandler scores a stored resume against a stored job description.
// Both lookups happen before the LLM call; an unknown id never reaches the model.
// @Summary Match a resume with a job description
// @Tags matches
// @Accept json
// @Produce json
// @Param request body MatchRequest true "Resume and job ids"
// @Success 200 {object} MatchResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /match [post]
func (a *API) MatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	resume, err := a.store.GetResume(r.Context(), req.ResumeID)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Resume not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error matching resume and job: "+err.Error())
		return
	}

	job, err := a.store.GetJob(r.Context(), req.JobID)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Job description not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error matching resume and job: "+err.Error())
		return
	}

	resumeInfo := &nlp.ResumeInfo{
		Skills:         resume.ExtractedSkills,
		Experience:     resume.ExtractedExperience,
		Qualifications: resume.ExtractedQualifications,
		Keywords:       resume.ExtractedKeywords,
	}
	jobInfo := &nlp.JobInfo{
		RequiredSkills:         job.RequiredSkills,
		RequiredExperience:     job.RequiredExperience,
		RequiredQualifications: job.RequiredQualifications,
		Keywords:               job.ExtractedKeywords,
	}

	analysis, err := a.analyzer.CalculateMatchScore(r.Context(), resumeInfo, jobInfo)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error matching resume and job: "+err.Error())
		return
	}

	match := storage.NewMatch(resume.ID, job.ID, analysis)
	if err := a.store.SaveMatch(r.Context(), match); err != nil {
		writeError(w, http.StatusInternalServerError, "Error matching resume and job: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MatchResponse{
		Message:             "Match analysis completed",
		MatchID:             match.ID,
		OverallScore:        match.OverallScore,
		SkillsMatch:         match.SkillsMatch,
		ExperienceMatch:     match.ExperienceMatch,
		QualificationsMatch: match.QualificationsMatch,
		MatchedKeywords:     match.MatchedKeywords,
		MissingSkills:       match.MissingSkills,
		Suggestions:         match.Suggestions,
		DetailedAnalysis:    match.DetailedAnalysis,
	})
}

// MatchDetailHandler returns a match together with its resume and job documents.
// The resume or job may be null if removed at the operator level since match time.
// @Summary Get match details
// @Tags matches
// @Produce json
// @Param id path string true "Match id"
// @Success 200 {object} MatchDetailResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /match/{id} [get]
func (a *API) MatchDetailHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/match/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "Match not found")
		return
	}

	match, err := a.store.GetMatch(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Match not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error getting match details: "+err.Error())
		return
	}

	resume, err := a.store.GetResume(r.Context(), match.ResumeID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Error getting match details: "+err.Error())
		return
	}
	job, err := a.store.GetJob(r.Context(), match.JobID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Error getting match details: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MatchDetailResponse{
		Match:  match,
		Resume: resume,
		Job:    job,
	})
}

// ListMatchesHandler returns all match results, newest first
// @Summary List matches
// @Tags matches
// @Produce json
// @Success 200 {object} map[string][]storage.Match
// @Failure 500 {object} map[string]string
// @Router /matches [get]
func (a *API) ListMatchesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	matches, err := a.store.ListMatches(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error getting matches: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}
