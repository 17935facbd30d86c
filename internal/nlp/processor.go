package nlp

import (
	"context"
	"encoding/json"
	"log"

	"resume-matcher/internal/llm"
)

// Generator is the narrow slice of the LLM client the processor needs. llm.Service
// satisfies it; tests substitute a canned implementation.
type Generator interface {
	Generate(ctx context.Context, systemMsg, prompt string) (string, error)
}

// Analyzer is what the API layer depends on for extraction and scoring.
type Analyzer interface {
	ExtractResumeInfo(ctx context.Context, resumeText string) (*ResumeInfo, error)
	ExtractJobInfo(ctx context.Context, description string) (*JobInfo, error)
	CalculateMatchScore(ctx context.Context, resume *ResumeInfo, job *JobInfo) (*MatchAnalysis, error)
}

// Processor builds prompts, submits them, and parses the replies defensively.
// A malformed reply is logged and swallowed: the caller gets a zeroed record, never
// an error. Errors are reserved for transport failures reaching the LLM at all.
type Processor struct {
	gen Generator
}

func NewProcessor(gen Generator) *Processor {
	return &Processor{gen: gen}
}

var _ Analyzer = (*Processor)(nil)

// ExtractResumeInfo pulls skills, experience, qualifications and keywords out of
// raw resume text.
func (p *Processor) ExtractResumeInfo(ctx context.Context, resumeText string) (*ResumeInfo, error) {
	reply, err := p.gen.Generate(ctx, resumeAnalyzerPersona, buildResumePrompt(resumeText))
	if err != nil {
		return nil, err
	}

	var info ResumeInfo
	if err := json.Unmarshal([]byte(llm.SanitizeJSON(reply)), &info); err != nil {
		log.Printf("[ERROR] resume extraction: JSON decode error: %v", err)
		log.Printf("[ERROR] resume extraction: raw response: %s", reply)
		return emptyResumeInfo(), nil
	}

	return info.normalize(), nil
}

// ExtractJobInfo pulls required skills, experience, qualifications and keywords out
// of a job description.
func (p *Processor) ExtractJobInfo(ctx context.Context, description string) (*JobInfo, error) {
	reply, err := p.gen.Generate(ctx, jobAnalyzerPersona, buildJobPrompt(description))
	if err != nil {
		return nil, err
	}

	var info JobInfo
	if err := json.Unmarshal([]byte(llm.SanitizeJSON(reply)), &info); err != nil {
		log.Printf("[ERROR] job extraction: JSON decode error: %v", err)
		log.Printf("[ERROR] job extraction: raw response: %s", reply)
		return emptyJobInfo(), nil
	}

	return info.normalize(), nil
}

// CalculateMatchScore asks the model to score the resume against the job
// requirements. Both inputs are the already-extracted attribute records.
func (p *Processor) CalculateMatchScore(ctx context.Context, resume *ResumeInfo, job *JobInfo) (*MatchAnalysis, error) {
	reply, err := p.gen.Generate(ctx, matchAnalyzerPersona, buildMatchPrompt(resume, job))
	if err != nil {
		return nil, err
	}

	var analysis MatchAnalysis
	if err := json.Unmarshal([]byte(llm.SanitizeJSON(reply)), &analysis); err != nil {
		log.Printf("[ERROR] match scoring: JSON decode error: %v", err)
		log.Printf("[ERROR] match scoring: raw response: %s", reply)
		return fallbackMatchAnalysis(), nil
	}

	return analysis.normalize(), nil
}
