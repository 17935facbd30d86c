package storage

import (
	"time"

	"github.com/google/uuid"

	"resume-matcher/internal/nlp"
)

// Resume is a processed resume document. Immutable once saved.
type Resume struct {
	ID                      string    `json:"id"`
	Filename                string    `json:"filename"`
	OriginalText            string    `json:"original_text"`
	ExtractedSkills         []string  `json:"extracted_skills"`
	ExtractedExperience     []string  `json:"extracted_experience"`
	ExtractedQualifications []string  `json:"extracted_qualifications"`
	ExtractedKeywords       []string  `json:"extracted_keywords"`
	CreatedAt               time.Time `json:"created_at"`
}

// Job is an analyzed job description. Immutable once saved.
type Job struct {
	ID                     string    `json:"id"`
	Title                  string    `json:"title"`
	Description            string    `json:"description"`
	RequiredSkills         []string  `json:"required_skills"`
	RequiredExperience     []string  `json:"required_experience"`
	RequiredQualifications []string  `json:"required_qualifications"`
	ExtractedKeywords      []string  `json:"extracted_keywords"`
	CreatedAt              time.Time `json:"created_at"`
}

// Match is a scored resume/job pairing. ResumeID and JobID reference records that
// existed when the match was computed; they are not foreign keys.
type Match struct {
	ID                  string       `json:"id"`
	ResumeID            string       `json:"resume_id"`
	JobID               string       `json:"job_id"`
	OverallScore        float64      `json:"overall_score"`
	SkillsMatch         nlp.SubMatch `json:"skills_match"`
	ExperienceMatch     nlp.SubMatch `json:"experience_match"`
	QualificationsMatch nlp.SubMatch `json:"qualifications_match"`
	MatchedKeywords     []string     `json:"matched_keywords"`
	MissingSkills       []string     `json:"missing_skills"`
	Suggestions         []string     `json:"suggestions"`
	DetailedAnalysis    string       `json:"detailed_analysis"`
	CreatedAt           time.Time    `json:"created_at"`
}

// NewResume builds a Resume from extracted text and its attribute record, assigning
// the id and creation timestamp.
func NewResume(filename, text string, info *nlp.ResumeInfo) *Resume {
	return &Resume{
		ID:                      uuid.NewString(),
		Filename:                filename,
		OriginalText:            text,
		ExtractedSkills:         info.Skills,
		ExtractedExperience:     info.Experience,
		ExtractedQualifications: info.Qualifications,
		ExtractedKeywords:       info.Keywords,
		CreatedAt:               time.Now().UTC(),
	}
}

// NewJob builds a Job from a title, description and its requirement record.
func NewJob(title, description string, info *nlp.JobInfo) *Job {
	return &Job{
		ID:                     uuid.NewString(),
		Title:                  title,
		Description:            description,
		RequiredSkills:         info.RequiredSkills,
		RequiredExperience:     info.RequiredExperience,
		RequiredQualifications: info.RequiredQualifications,
		ExtractedKeywords:      info.Keywords,
		CreatedAt:              time.Now().UTC(),
	}
}

// NewMatch builds a Match record from a scoring result.
func NewMatch(resumeID, jobID string, analysis *nlp.MatchAnalysis) *Match {
	return &Match{
		ID:                  uuid.NewString(),
		ResumeID:            resumeID,
		JobID:               jobID,
		OverallScore:        analysis.OverallScore,
		SkillsMatch:         analysis.SkillsMatch,
		ExperienceMatch:     analysis.ExperienceMatch,
		QualificationsMatch: analysis.QualificationsMatch,
		MatchedKeywords:     analysis.MatchedKeywords,
		MissingSkills:       analysis.MissingSkills,
		Suggestions:         analysis.Suggestions,
		DetailedAnalysis:    analysis.DetailedAnalysis,
		CreatedAt:           time.Now().UTC(),
	}
}
