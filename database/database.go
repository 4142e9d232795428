package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"resumeinsight/config"
)

func Connect(cfg config.DatabaseConfig) (*sql.DB, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	return db, nil
}

// EnsureSchema creates the tables the service needs if they do not exist.
// JSON-shaped analysis output is stored in JSONB columns so stored results
// round-trip byte for byte.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			name VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS analyses (
			id SERIAL PRIMARY KEY,
			user_id INTEGER REFERENCES users(id) ON DELETE SET NULL,
			filename VARCHAR(255) NOT NULL,
			uploaded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			name VARCHAR(255),
			email VARCHAR(255),
			phone VARCHAR(64),
			raw_text TEXT,
			job_description TEXT,
			skills JSONB,
			analysis JSONB,
			suggestions JSONB,
			sections_score DOUBLE PRECISION,
			keywords_score DOUBLE PRECISION,
			action_verbs_score DOUBLE PRECISION,
			word_count_score DOUBLE PRECISION,
			issues_score DOUBLE PRECISION,
			overall_score DOUBLE PRECISION,
			grade VARCHAR(2)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_user_id ON analyses(user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("error creating schema: %v", err)
		}
	}
	return nil
}
