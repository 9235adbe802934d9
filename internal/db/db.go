// Package db provides optional PostgreSQL storage for generated resumes.
// The pipeline itself never requires persistence; archiving is a caller
// concern enabled by configuring a database URL.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/deep-job-seek/internal/types"
)

// ErrNotFound is returned when a stored resume does not exist.
var ErrNotFound = errors.New("resume not found")

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// StoredResume is one archived generation.
type StoredResume struct {
	ID             uuid.UUID
	JobDescription string
	Document       types.Resume
	SkillFit       float64
	CreatedAt      time.Time
}

// Connect establishes a connection pool to the database and ensures the
// archive table exists.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{pool: pool}
	if err := db.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

func (db *DB) ensureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS generated_resumes (
			id UUID PRIMARY KEY,
			job_description TEXT NOT NULL,
			document JSONB NOT NULL,
			skill_fit DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveResume archives a generated resume and returns its id.
func (db *DB) SaveResume(ctx context.Context, jobDescription string, document *types.Resume, skillFit float64) (uuid.UUID, error) {
	docJSON, err := json.Marshal(document)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO generated_resumes (id, job_description, document, skill_fit)
		 VALUES ($1, $2, $3, $4)`,
		id, jobDescription, docJSON, skillFit,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume fetches one archived resume by id.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*StoredResume, error) {
	var (
		stored  StoredResume
		docJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_description, document, skill_fit, created_at
		 FROM generated_resumes WHERE id = $1`,
		id,
	).Scan(&stored.ID, &stored.JobDescription, &docJSON, &stored.SkillFit, &stored.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(docJSON, &stored.Document); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &stored, nil
}

// ListResumes returns recent archived resumes, newest first.
func (db *DB) ListResumes(ctx context.Context, limit int) ([]StoredResume, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_description, document, skill_fit, created_at
		 FROM generated_resumes ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var result []StoredResume
	for rows.Next() {
		var (
			stored  StoredResume
			docJSON []byte
		)
		if err := rows.Scan(&stored.ID, &stored.JobDescription, &docJSON, &stored.SkillFit, &stored.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		if err := json.Unmarshal(docJSON, &stored.Document); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		result = append(result, stored)
	}
	return result, rows.Err()
}
