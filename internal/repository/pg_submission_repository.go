package repository

import (
	"context"

	"github.com/cortexa-ai/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubmissionRepository defines the persistence interface for contact
// submissions. Submissions are append-only: there is deliberately no
// read, update, or delete operation.
type SubmissionRepository interface {
	// EnsureSchema creates the contact_submissions table when it does
	// not exist yet. Safe to call any number of times.
	EnsureSchema(ctx context.Context) error

	// Save inserts one row and populates sub.ID and sub.CreatedAt from
	// the database RETURNING clause.
	Save(ctx context.Context, sub *model.ContactSubmission) error
}

// createSubmissionsTable uses IF NOT EXISTS so concurrent callers
// racing on first use are benign.
const createSubmissionsTable = `
CREATE TABLE IF NOT EXISTS contact_submissions (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	company    TEXT,
	message    TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'new',
	notes      TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PgSubmissionRepository is the PostgreSQL implementation of
// SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by
// the given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

func (r *PgSubmissionRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, createSubmissionsTable)
	return storageErr("ensure schema", err)
}

// Save inserts a new contact_submissions row. Each call creates a new
// row; identical payloads are not deduplicated.
func (r *PgSubmissionRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, company, message, status)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		 RETURNING id, created_at`,
		sub.Name, sub.Email, sub.Company, sub.Message, sub.Status,
	).Scan(&sub.ID, &sub.CreatedAt)
	return storageErr("insert submission", err)
}
