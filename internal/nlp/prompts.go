package nlp

import (
	"encoding/json"
	"fmt"
)

const (
	resumeAnalyzerPersona = "You are an expert resume analyzer. Extract information from resumes and provide structured JSON responses."
	jobAnalyzerPersona    = "You are an expert job description analyzer. Extract requirements from job descriptions and provide structured JSON responses."
	matchAnalyzerPersona  = "You are an expert resume-job matching analyzer. Calculate semantic matches and provide detailed analysis."
)

func buildResumePrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze the following resume and extract information in JSON format:

Resume Text:
%s

Please provide a JSON response with the following structure:
{
    "skills": ["skill1", "skill2", ...],
    "experience": ["experience1", "experience2", ...],
    "qualifications": ["qualification1", "qualification2", ...],
    "keywords": ["keyword1", "keyword2", ...]
}

Guidelines:
- Extract all technical skills, soft skills, and tools mentioned
- Include work experience descriptions, job titles, and achievements
- Extract educational qualifications, certifications, and degrees
- Include relevant keywords that would be important for job matching
- Be comprehensive but avoid duplicates
- Only return the JSON, no additional text`, resumeText)
}

func buildJobPrompt(description string) string {
	return fmt.Sprintf(`Analyze the following job description and extract requirements in JSON format:

Job Description:
%s

Please provide a JSON response with the following structure:
{
    "required_skills": ["skill1", "skill2", ...],
    "required_experience": ["experience1", "experience2", ...],
    "required_qualifications": ["qualification1", "qualification2", ...],
    "keywords": ["keyword1", "keyword2", ...]
}

Guidelines:
- Extract all required technical skills, soft skills, and tools
- Include required experience levels, years, and specific experience types
- Extract educational requirements, certifications, and degrees
- Include important keywords that candidates should have
- Be comprehensive but avoid duplicates
- Only return the JSON, no additional text`, description)
}

func buildMatchPrompt(resume *ResumeInfo, job *JobInfo) string {
	return fmt.Sprintf(`Analyze the semantic match between this resume and job requirements:

Resume Information:
Skills: %s
Experience: %s
Qualifications: %s
Keywords: %s

Job Requirements:
Required Skills: %s
Required Experience: %s
Required Qualifications: %s
Keywords: %s

Please provide a JSON response with the following structure:
{
    "overall_score": 85.5,
    "skills_match": {
        "score": 80.0,
        "matched": ["skill1", "skill2"],
        "missing": ["skill3", "skill4"]
    },
    "experience_match": {
        "score": 90.0,
        "matched": ["experience1"],
        "missing": ["experience2"]
    },
    "qualifications_match": {
        "score": 85.0,
        "matched": ["qualification1"],
        "missing": ["qualification2"]
    },
    "matched_keywords": ["keyword1", "keyword2"],
    "missing_skills": ["skill3", "skill4"],
    "suggestions": ["suggestion1", "suggestion2"],
    "detailed_analysis": "Detailed analysis of the match..."
}

Guidelines:
- Use semantic matching, not just exact keyword matching
- Overall score should be 0-100 based on weighted average
- Consider similar skills as matches (e.g., "JavaScript" and "JS")
- Provide actionable suggestions for improvement
- Give detailed analysis explaining the scores
- Only return the JSON, no additional text`,
		jsonList(resume.Skills), jsonList(resume.Experience),
		jsonList(resume.Qualifications), jsonList(resume.Keywords),
		jsonList(job.RequiredSkills), jsonList(job.RequiredExperience),
		jsonList(job.RequiredQualifications), jsonList(job.Keywords))
}

func jsonList(items []string) string {
	b, _ := json.Marshal(nonNil(items))
	return string(b)
}
