package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// ErrNotFound is returned when a record id is absent from its collection.
var ErrNotFound = errors.New("record not found")

// Store is the persistence gateway the API layer depends on. DB implements it over
// Postgres; tests use an in-memory fake.
type Store interface {
	SaveResume(ctx context.Context, r *Resume) error
	GetResume(ctx context.Context, id string) (*Resume, error)
	ListResumes(ctx context.Context) ([]*Resume, error)

	SaveJob(ctx context.Context, j *Job) error
	GetJob(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context) ([]*Job, error)

	SaveMatch(ctx context.Context, m *Match) error
	GetMatch(ctx context.Context, id string) (*Match, error)
	ListMatches(ctx context.Context) ([]*Match, error)
}

type DB struct {
	connection *sql.DB
}

var _ Store = (*DB)(nil)

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// InitSchema creates the three collections and the match lookup indexes.
func (db *DB) InitSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS resumes (
			row_id BIGSERIAL PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			filename TEXT NOT NULL,
			original_text TEXT NOT NULL,
			extracted_skills JSONB NOT NULL DEFAULT '[]',
			extracted_experience JSONB NOT NULL DEFAULT '[]',
			extracted_qualifications JSONB NOT NULL DEFAULT '[]',
			extracted_keywords JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			row_id BIGSERIAL PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			required_skills JSONB NOT NULL DEFAULT '[]',
			required_experience JSONB NOT NULL DEFAULT '[]',
			required_qualifications JSONB NOT NULL DEFAULT '[]',
			extracted_keywords JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS matches (
			row_id BIGSERIAL PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			resume_id TEXT NOT NULL,
			job_id TEXT NOT NULL,
			overall_score DOUBLE PRECISION NOT NULL,
			skills_match JSONB NOT NULL DEFAULT '{}',
			experience_match JSONB NOT NULL DEFAULT '{}',
			qualifications_match JSONB NOT NULL DEFAULT '{}',
			matched_keywords JSONB NOT NULL DEFAULT '[]',
			missing_skills JSONB NOT NULL DEFAULT '[]',
			suggestions JSONB NOT NULL DEFAULT '[]',
			detailed_analysis TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_resume_id ON matches (resume_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_job_id ON matches (job_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_created_at ON matches (created_at)`,
	}

	for _, stmt := range stmts {
		if _, err := db.connection.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema init: %w", err)
		}
	}
	return nil
}

func (db *DB) SaveResume(ctx context.Context, r *Resume) error {
	query := `INSERT INTO resumes (id, filename, original_text, extracted_skills, extracted_experience, extracted_qualifications, extracted_keywords, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := db.connection.ExecContext(ctx, query,
		r.ID,
		r.Filename,
		r.OriginalText,
		toJSON(r.ExtractedSkills),
		toJSON(r.ExtractedExperience),
		toJSON(r.ExtractedQualifications),
		toJSON(r.ExtractedKeywords),
		r.CreatedAt,
	)
	return err
}

func (db *DB) GetResume(ctx context.Context, id string) (*Resume, error) {
	query := `SELECT id, filename, original_text, extracted_skills, extracted_experience, extracted_qualifications, extracted_keywords, created_at
	          FROM resumes WHERE id = $1`
	row := db.connection.QueryRowContext(ctx, query, id)

	r := &Resume{}
	var skills, experience, qualifications, keywords []byte
	err := row.Scan(&r.ID, &r.Filename, &r.OriginalText, &skills, &experience, &qualifications, &keywords, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	fromJSON(skills, &r.ExtractedSkills)
	fromJSON(experience, &r.ExtractedExperience)
	fromJSON(qualifications, &r.ExtractedQualifications)
	fromJSON(keywords, &r.ExtractedKeywords)
	return r, nil
}

func (db *DB) ListResumes(ctx context.Context) ([]*Resume, error) {
	query := `SELECT id, filename, original_text, extracted_skills, extracted_experience, extracted_qualifications, extracted_keywords, created_at
	          FROM resumes ORDER BY created_at DESC`
	rows, err := db.connection.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*Resume{}
	for rows.Next() {
		r := &Resume{}
		var skills, experience, qualifications, keywords []byte
		if err := rows.Scan(&r.ID, &r.Filename, &r.OriginalText, &skills, &experience, &qualifications, &keywords, &r.CreatedAt); err != nil {
			return nil, err
		}
		fromJSON(skills, &r.ExtractedSkills)
		fromJSON(experience, &r.ExtractedExperience)
		fromJSON(qualifications, &r.ExtractedQualifications)
		fromJSON(keywords, &r.ExtractedKeywords)
		res = append(res, r)
	}
	return res, rows.Err()
}

func (db *DB) SaveJob(ctx context.Context, j *Job) error {
	query := `INSERT INTO jobs (id, title, description, required_skills, required_experience, required_qualifications, extracted_keywords, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := db.connection.ExecContext(ctx, query,
		j.ID,
		j.Title,
		j.Description,
		toJSON(j.RequiredSkills),
		toJSON(j.RequiredExperience),
		toJSON(j.RequiredQualifications),
		toJSON(j.ExtractedKeywords),
		j.CreatedAt,
	)
	return err
}

func (db *DB) GetJob(ctx context.Context, id string) (*Job, error) {
	query := `SELECT id, title, description, required_skills, required_experience, required_qualifications, extracted_keywords, created_at
	          FROM jobs WHERE id = $1`
	row := db.connection.QueryRowContext(ctx, query, id)

	j := &Job{}
	var skills, experience, qualifications, keywords []byte
	err := row.Scan(&j.ID, &j.Title, &j.Description, &skills, &experience, &qualifications, &keywords, &j.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	fromJSON(skills, &j.RequiredSkills)
	fromJSON(experience, &j.RequiredExperience)
	fromJSON(qualifications, &j.RequiredQualifications)
	fromJSON(keywords, &j.ExtractedKeywords)
	return j, nil
}

func (db *DB) ListJobs(ctx context.Context) ([]*Job, error) {
	query := `SELECT id, title, description, required_skills, required_experience, required_qualifications, extracted_keywords, created_at
	          FROM jobs ORDER BY created_at DESC`
	rows, err := db.connection.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*Job{}
	for rows.Next() {
		j := &Job{}
		var skills, experience, qualifications, keywords []byte
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &skills, &experience, &qualifications, &keywords, &j.CreatedAt); err != nil {
			return nil, err
		}
		fromJSON(skills, &j.RequiredSkills)
		fromJSON(experience, &j.RequiredExperience)
		fromJSON(qualifications, &j.RequiredQualifications)
		fromJSON(keywords, &j.ExtractedKeywords)
		res = append(res, j)
	}
	return res, rows.Err()
}

func (db *DB) SaveMatch(ctx context.Context, m *Match) error {
	query := `INSERT INTO matches (id, resume_id, job_id, overall_score, skills_match, experience_match, qualifications_match, matched_keywords, missing_skills, suggestions, detailed_analysis, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := db.connection.ExecContext(ctx, query,
		m.ID,
		m.ResumeID,
		m.JobID,
		m.OverallScore,
		toJSON(m.SkillsMatch),
		toJSON(m.ExperienceMatch),
		toJSON(m.QualificationsMatch),
		toJSON(m.MatchedKeywords),
		toJSON(m.MissingSkills),
		toJSON(m.Suggestions),
		m.DetailedAnalysis,
		m.CreatedAt,
	)
	return err
}

func (db *DB) GetMatch(ctx context.Context, id string) (*Match, error) {
	query := matchSelect + ` WHERE id = $1`
	row := db.connection.QueryRowContext(ctx, query, id)

	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (db *DB) ListMatches(ctx context.Context) ([]*Match, error) {
	query := matchSelect + ` ORDER BY created_at DESC`
	rows, err := db.connection.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

const matchSelect = `SELECT id, resume_id, job_id, overall_score, skills_match, experience_match, qualifications_match, matched_keywords, missing_skills, suggestions, detailed_analysis, created_at FROM matches`

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanMatch(row scannable) (*Match, error) {
	m := &Match{}
	var skillsMatch, experienceMatch, qualificationsMatch []byte
	var matchedKeywords, missingSkills, suggestions []byte
	err := row.Scan(&m.ID, &m.ResumeID, &m.JobID, &m.OverallScore,
		&skillsMatch, &experienceMatch, &qualificationsMatch,
		&matchedKeywords, &missingSkills, &suggestions,
		&m.DetailedAnalysis, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	fromJSON(skillsMatch, &m.SkillsMatch)
	fromJSON(experienceMatch, &m.ExperienceMatch)
	fromJSON(qualificationsMatch, &m.QualificationsMatch)
	fromJSON(matchedKeywords, &m.MatchedKeywords)
	fromJSON(missingSkills, &m.MissingSkills)
	fromJSON(suggestions, &m.Suggestions)
	return m, nil
}

func toJSON(v interface{}) []byte {
	b, _ := json.Marshal(v)
	return b
}

func fromJSON(data []byte, v interface{}) {
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[ERROR] decoding stored JSON column: %v", err)
	}
}
