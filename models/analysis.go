package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Analysis is one stored analysis run. The skills, analysis, and
// suggestions payloads are kept as raw JSON so the stored result matches
// what the pipeline produced.
type Analysis struct {
	ID             int             `json:"id"`
	UserID         sql.NullInt64   `json:"-"`
	Filename       string          `json:"filename"`
	UploadedAt     time.Time       `json:"uploaded_at"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	RawText        string          `json:"-"`
	JobDescription string          `json:"job_description,omitempty"`
	Skills         json.RawMessage `json:"skills"`
	AnalysisData   json.RawMessage `json:"analysis"`
	Suggestions    json.RawMessage `json:"suggestions"`
	SectionsScore  float64         `json:"sections_score"`
	KeywordsScore  float64         `json:"keywords_score"`
	ActionVerbs    float64         `json:"action_verbs_score"`
	WordCountScore float64         `json:"word_count_score"`
	IssuesScore    float64         `json:"issues_score"`
	OverallScore   float64         `json:"overall_score"`
	Grade          string          `json:"grade"`
}

type AnalysisModel struct {
	DB *sql.DB
}

func NewAnalysisModel(db *sql.DB) *AnalysisModel {
	return &AnalysisModel{DB: db}
}

func (m *AnalysisModel) Create(a *Analysis) (int, error) {
	var id int
	query := `
		INSERT INTO analyses (
			user_id, filename, uploaded_at, name, email, phone, raw_text,
			job_description, skills, analysis, suggestions,
			sections_score, keywords_score, action_verbs_score,
			word_count_score, issues_score, overall_score, grade
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`
	err := m.DB.QueryRow(query,
		a.UserID, a.Filename, time.Now(), a.Name, a.Email, a.Phone, a.RawText,
		a.JobDescription, a.Skills, a.AnalysisData, a.Suggestions,
		a.SectionsScore, a.KeywordsScore, a.ActionVerbs,
		a.WordCountScore, a.IssuesScore, a.OverallScore, a.Grade,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (m *AnalysisModel) GetByID(id int) (*Analysis, error) {
	a := &Analysis{}
	query := `
		SELECT id, user_id, filename, uploaded_at, name, email, phone, raw_text,
			job_description, skills, analysis, suggestions,
			sections_score, keywords_score, action_verbs_score,
			word_count_score, issues_score, overall_score, grade
		FROM analyses WHERE id = $1
	`
	err := m.DB.QueryRow(query, id).Scan(
		&a.ID, &a.UserID, &a.Filename, &a.UploadedAt, &a.Name, &a.Email, &a.Phone, &a.RawText,
		&a.JobDescription, &a.Skills, &a.AnalysisData, &a.Suggestions,
		&a.SectionsScore, &a.KeywordsScore, &a.ActionVerbs,
		&a.WordCountScore, &a.IssuesScore, &a.OverallScore, &a.Grade,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (m *AnalysisModel) ListByUserID(userID int, limit int) ([]*Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, filename, uploaded_at, name, email, phone, overall_score, grade
		FROM analyses WHERE user_id = $1
		ORDER BY uploaded_at DESC
		LIMIT $2
	`
	rows, err := m.DB.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*Analysis
	for rows.Next() {
		a := &Analysis{}
		if err := rows.Scan(&a.ID, &a.Filename, &a.UploadedAt, &a.Name, &a.Email, &a.Phone, &a.OverallScore, &a.Grade); err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}
