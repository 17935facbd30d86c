package nlp

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// stubGenerator returns a canned reply (or error) and records what it was asked.
type stubGenerator struct {
	reply  string
	err    error
	calls  int
	system string
	prompt string
}

func (s *stubGenerator) Generate(_ context.Context, systemMsg, prompt string) (string, error) {
	s.calls++
	s.system = systemMsg
	s.prompt = prompt
	return s.reply, s.err
}

func TestExtractResumeInfo_ValidReply(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n" + `{
		"skills": ["Python", "JavaScript"],
		"experience": ["5 years backend development"],
		"qualifications": ["BSc Computer Science"],
		"keywords": ["backend", "api"]
	}` + "\n```"}

	info, err := NewProcessor(gen).ExtractResumeInfo(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("ExtractResumeInfo() error: %v", err)
	}
	if len(info.Skills) != 2 || info.Skills[0] != "Python" {
		t.Errorf("Skills = %v, want [Python JavaScript]", info.Skills)
	}
	if len(info.Experience) != 1 || len(info.Qualifications) != 1 || len(info.Keywords) != 2 {
		t.Errorf("unexpected record: %+v", info)
	}
}

func TestExtractResumeInfo_MissingKeysDefaultToEmpty(t *testing.T) {
	gen := &stubGenerator{reply: `{"skills": ["Go"]}`}

	info, err := NewProcessor(gen).ExtractResumeInfo(context.Background(), "text")
	if err != nil {
		t.Fatalf("ExtractResumeInfo() error: %v", err)
	}
	if info.Experience == nil || info.Qualifications == nil || info.Keywords == nil {
		t.Errorf("missing keys should decode to empty lists, got %+v", info)
	}
	if len(info.Experience) != 0 {
		t.Errorf("Experience = %v, want empty", info.Experience)
	}
}

func TestExtractResumeInfo_UnparseableReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "prose only", reply: "I am unable to comply."},
		{name: "truncated object", reply: `{"skills": ["Go"`},
		{name: "wrong element type", reply: `{"skills": "Go"}`},
		{name: "empty reply", reply: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{reply: tt.reply}
			info, err := NewProcessor(gen).ExtractResumeInfo(context.Background(), "text")
			if err != nil {
				t.Fatalf("parse failure must not surface as error, got: %v", err)
			}
			if len(info.Skills) != 0 || len(info.Experience) != 0 ||
				len(info.Qualifications) != 0 || len(info.Keywords) != 0 {
				t.Errorf("want all-empty record, got %+v", info)
			}
			if info.Skills == nil {
				t.Error("lists must be empty, not nil")
			}
		})
	}
}

func TestExtractResumeInfo_TransportErrorPropagates(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	_, err := NewProcessor(gen).ExtractResumeInfo(context.Background(), "text")
	if err == nil {
		t.Fatal("transport error must propagate")
	}
}

func TestExtractResumeInfo_PromptEmbedsText(t *testing.T) {
	gen := &stubGenerator{reply: `{}`}
	_, err := NewProcessor(gen).ExtractResumeInfo(context.Background(), "UNIQUE-RESUME-MARKER")
	if err != nil {
		t.Fatalf("ExtractResumeInfo() error: %v", err)
	}
	if !strings.Contains(gen.prompt, "UNIQUE-RESUME-MARKER") {
		t.Error("prompt does not embed the resume text")
	}
	if !strings.Contains(gen.prompt, `"skills"`) || !strings.Contains(gen.prompt, "Only return the JSON") {
		t.Error("prompt does not specify the expected JSON contract")
	}
	if !strings.Contains(gen.system, "resume analyzer") {
		t.Errorf("system message = %q, want analyzer persona", gen.system)
	}
}

func TestExtractJobInfo_ValidReply(t *testing.T) {
	gen := &stubGenerator{reply: `{
		"required_skills": ["Kubernetes"],
		"required_experience": ["3+ years DevOps"],
		"required_qualifications": ["CKA certification"],
		"keywords": ["infrastructure"]
	}`}

	info, err := NewProcessor(gen).ExtractJobInfo(context.Background(), "job description")
	if err != nil {
		t.Fatalf("ExtractJobInfo() error: %v", err)
	}
	if len(info.RequiredSkills) != 1 || info.RequiredSkills[0] != "Kubernetes" {
		t.Errorf("RequiredSkills = %v", info.RequiredSkills)
	}
}

func TestExtractJobInfo_UnparseableReply(t *testing.T) {
	gen := &stubGenerator{reply: "not json"}
	info, err := NewProcessor(gen).ExtractJobInfo(context.Background(), "description")
	if err != nil {
		t.Fatalf("parse failure must not surface as error, got: %v", err)
	}
	if len(info.RequiredSkills) != 0 || len(info.RequiredExperience) != 0 ||
		len(info.RequiredQualifications) != 0 || len(info.Keywords) != 0 {
		t.Errorf("want all-empty record, got %+v", info)
	}
}

func TestCalculateMatchScore_ValidReply(t *testing.T) {
	gen := &stubGenerator{reply: `{
		"overall_score": 85.5,
		"skills_match": {"score": 80.0, "matched": ["Python"], "missing": ["Rust"]},
		"experience_match": {"score": 90.0, "matched": ["backend"], "missing": []},
		"qualifications_match": {"score": 85.0, "matched": [], "missing": ["MSc"]},
		"matched_keywords": ["api"],
		"missing_skills": ["Rust"],
		"suggestions": ["Learn Rust"],
		"detailed_analysis": "Strong backend match."
	}`}

	resume := &ResumeInfo{Skills: []string{"Python"}}
	job := &JobInfo{RequiredSkills: []string{"Python", "Rust"}}
	analysis, err := NewProcessor(gen).CalculateMatchScore(context.Background(), resume, job)
	if err != nil {
		t.Fatalf("CalculateMatchScore() error: %v", err)
	}
	if analysis.OverallScore != 85.5 {
		t.Errorf("OverallScore = %v, want 85.5", analysis.OverallScore)
	}
	if analysis.SkillsMatch.Score != 80.0 || len(analysis.SkillsMatch.Matched) != 1 {
		t.Errorf("SkillsMatch = %+v", analysis.SkillsMatch)
	}
	if analysis.DetailedAnalysis != "Strong backend match." {
		t.Errorf("DetailedAnalysis = %q", analysis.DetailedAnalysis)
	}
}

func TestCalculateMatchScore_FallbackRecord(t *testing.T) {
	gen := &stubGenerator{reply: "the model refused to answer"}
	analysis, err := NewProcessor(gen).CalculateMatchScore(context.Background(), &ResumeInfo{}, &JobInfo{})
	if err != nil {
		t.Fatalf("parse failure must not surface as error, got: %v", err)
	}

	if analysis.OverallScore != 0.0 {
		t.Errorf("OverallScore = %v, want 0.0", analysis.OverallScore)
	}
	for name, sm := range map[string]SubMatch{
		"skills":         analysis.SkillsMatch,
		"experience":     analysis.ExperienceMatch,
		"qualifications": analysis.QualificationsMatch,
	} {
		if sm.Score != 0.0 || len(sm.Matched) != 0 || len(sm.Missing) != 0 {
			t.Errorf("%s sub-match not zeroed: %+v", name, sm)
		}
		if sm.Matched == nil || sm.Missing == nil {
			t.Errorf("%s sub-match lists must be empty, not nil", name)
		}
	}
	if len(analysis.MatchedKeywords) != 0 || len(analysis.MissingSkills) != 0 {
		t.Errorf("keyword lists not empty: %+v", analysis)
	}
	if len(analysis.Suggestions) != 1 || analysis.Suggestions[0] != "Unable to analyze match at this time" {
		t.Errorf("Suggestions = %v", analysis.Suggestions)
	}
	if analysis.DetailedAnalysis != "Analysis failed due to processing error" {
		t.Errorf("DetailedAnalysis = %q", analysis.DetailedAnalysis)
	}
}

func TestCalculateMatchScore_PromptEmbedsBothRecords(t *testing.T) {
	gen := &stubGenerator{reply: `{}`}
	resume := &ResumeInfo{Skills: []string{"RESUME-SKILL"}}
	job := &JobInfo{RequiredSkills: []string{"JOB-SKILL"}}
	_, err := NewProcessor(gen).CalculateMatchScore(context.Background(), resume, job)
	if err != nil {
		t.Fatalf("CalculateMatchScore() error: %v", err)
	}
	if !strings.Contains(gen.prompt, "RESUME-SKILL") || !strings.Contains(gen.prompt, "JOB-SKILL") {
		t.Error("prompt does not embed both attribute records")
	}
	if !strings.Contains(gen.prompt, "overall_score") || !strings.Contains(gen.prompt, "semantic") {
		t.Error("prompt does not specify the scoring contract")
	}
}
