package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"resume-matcher/internal/cv"
	"resume-matcher/internal/storage"
)

type UploadResumeRequest struct {
	FileContent string `json:"file_content"` // base64 encoded
	Filename    string `json:"filename"`
	FileType    string `json:"file_type"` // pdf, docx, doc or txt
}

type UploadResumeResponse struct {
	Message                 string   `json:"message"`
	ResumeID                string   `json:"resume_id"`
	ExtractedSkills         []string `json:"extracted_skills"`
	ExtractedExperience     []string `json:"extracted_experience"`
	ExtractedQualifications []string `json:"extracted_qualifications"`
	ExtractedKeywords       []string `json:"extracted_keywords"`
}

// UploadResumeHandler ingests a base64-encoded resume document
// @Summary Upload and process a resume
// @Description Decodes the uploaded file, extracts its text and runs LLM attribute extraction
// @Tags resumes
// @Accept json
// @Produce json
// @Param request body UploadResumeRequest true "Resume upload payload"
// @Success 200 {object} UploadResumeResponse
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upload-resume [post]
func (a *API) UploadResumeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req UploadResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	// Size check runs on the encoded length, before any decode work.
	if !cv.ValidateFileSize(req.FileContent, a.maxUploadMB) {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File size exceeds %dMB limit", a.maxUploadMB))
		return
	}

	if !cv.IsSupportedFormat(req.FileType) {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Unsupported file type. Supported formats: %v", cv.SupportedFormats()))
		return
	}

	data, err := cv.DecodeBase64(req.FileContent)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to extract text from file")
		return
	}

	text, err := cv.ExtractText(data, req.FileType)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to extract text from file")
		return
	}

	info, err := a.analyzer.ExtractResumeInfo(r.Context(), text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error processing resume: "+err.Error())
		return
	}

	resume := storage.NewResume(req.Filename, text, info)
	if err := a.store.SaveResume(r.Context(), resume); err != nil {
		writeError(w, http.StatusInternalServerError, "Error processing resume: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, UploadResumeResponse{
		Message:                 "Resume processed successfully",
		ResumeID:                resume.ID,
		ExtractedSkills:         resume.ExtractedSkills,
		ExtractedExperience:     resume.ExtractedExperience,
		ExtractedQualifications: resume.ExtractedQualifications,
		ExtractedKeywords:       resume.ExtractedKeywords,
	})
}

// ListResumesHandler returns all processed resumes
// @Summary List resumes
// @Tags resumes
// @Produce json
// @Success 200 {object} map[string][]storage.Resume
// @Failure 500 {object} map[string]string
// @Router /resumes [get]
func (a *API) ListResumesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resumes, err := a.store.ListResumes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error getting resumes: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"resumes": resumes})
}
