package nlp

// ResumeInfo is the four-list attribute record extracted from a resume.
type ResumeInfo struct {
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
	Qualifications []string `json:"qualifications"`
	Keywords       []string `json:"keywords"`
}

// JobInfo is the four-list requirement record extracted from a job description.
type JobInfo struct {
	RequiredSkills         []string `json:"required_skills"`
	RequiredExperience     []string `json:"required_experience"`
	RequiredQualifications []string `json:"required_qualifications"`
	Keywords               []string `json:"keywords"`
}

// SubMatch scores one attribute category of a match.
type SubMatch struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// MatchAnalysis is the full scoring result for a resume/job pair.
type MatchAnalysis struct {
	OverallScore        float64  `json:"overall_score"`
	SkillsMatch         SubMatch `json:"skills_match"`
	ExperienceMatch     SubMatch `json:"experience_match"`
	QualificationsMatch SubMatch `json:"qualifications_match"`
	MatchedKeywords     []string `json:"matched_keywords"`
	MissingSkills       []string `json:"missing_skills"`
	Suggestions         []string `json:"suggestions"`
	DetailedAnalysis    string   `json:"detailed_analysis"`
}

const (
	fallbackSuggestion = "Unable to analyze match at this time"
	fallbackAnalysis   = "Analysis failed due to processing error"
)

func emptyResumeInfo() *ResumeInfo {
	return &ResumeInfo{
		Skills:         []string{},
		Experience:     []string{},
		Qualifications: []string{},
		Keywords:       []string{},
	}
}

func emptyJobInfo() *JobInfo {
	return &JobInfo{
		RequiredSkills:         []string{},
		RequiredExperience:     []string{},
		RequiredQualifications: []string{},
		Keywords:               []string{},
	}
}

// fallbackMatchAnalysis mirrors the success shape field-for-field so consumers never
// branch on whether scoring degraded.
func fallbackMatchAnalysis() *MatchAnalysis {
	return &MatchAnalysis{
		OverallScore:        0.0,
		SkillsMatch:         SubMatch{Score: 0.0, Matched: []string{}, Missing: []string{}},
		ExperienceMatch:     SubMatch{Score: 0.0, Matched: []string{}, Missing: []string{}},
		QualificationsMatch: SubMatch{Score: 0.0, Matched: []string{}, Missing: []string{}},
		MatchedKeywords:     []string{},
		MissingSkills:       []string{},
		Suggestions:         []string{fallbackSuggestion},
		DetailedAnalysis:    fallbackAnalysis,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (r *ResumeInfo) normalize() *ResumeInfo {
	r.Skills = nonNil(r.Skills)
	r.Experience = nonNil(r.Experience)
	r.Qualifications = nonNil(r.Qualifications)
	r.Keywords = nonNil(r.Keywords)
	return r
}

func (j *JobInfo) normalize() *JobInfo {
	j.RequiredSkills = nonNil(j.RequiredSkills)
	j.RequiredExperience = nonNil(j.RequiredExperience)
	j.RequiredQualifications = nonNil(j.RequiredQualifications)
	j.Keywords = nonNil(j.Keywords)
	return j
}

func (m *SubMatch) normalize() {
	m.Matched = nonNil(m.Matched)
	m.Missing = nonNil(m.Missing)
}

func (m *MatchAnalysis) normalize() *MatchAnalysis {
	m.SkillsMatch.normalize()
	m.ExperienceMatch.normalize()
	m.QualificationsMatch.normalize()
	m.MatchedKeywords = nonNil(m.MatchedKeywords)
	m.MissingSkills = nonNil(m.MissingSkills)
	m.Suggestions = nonNil(m.Suggestions)
	return m
}
