package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-builder/internal/normalize"
)

// Schema is the DDL for the resume document table. Documents are stored as
// jsonb in the wire shape, one row per user.
const Schema = `
CREATE TABLE IF NOT EXISTS resumes (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL UNIQUE,
    doc JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// PostgresStore is a ResumeStore backed by a PostgreSQL jsonb column, bound
// to one user. It satisfies the same contract as the REST client, so the
// builder is indifferent to which collaborator it saves against.
type PostgresStore struct {
	pool   *pgxpool.Pool
	userID uuid.UUID
}

// ConnectPostgres establishes a connection pool and binds a store to userID.
func ConnectPostgres(ctx context.Context, databaseURL string, userID uuid.UUID) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool, userID: userID}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the resumes table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return &TransportError{Op: "migrate", Message: "failed to ensure schema", Cause: err}
	}
	return nil
}

// Fetch returns the user's stored resume, or (nil, nil) when none exists.
func (s *PostgresStore) Fetch(ctx context.Context) (*normalize.WireDocument, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM resumes WHERE user_id = $1`,
		s.userID,
	).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, &TransportError{Op: "load", Message: "failed to fetch resume", Cause: err}
	}

	var doc normalize.WireDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &TransportError{Op: "load", Message: "failed to decode stored document", Cause: err}
	}
	return &doc, nil
}

// Create stores a new resume row, assigning the document identifier.
func (s *PostgresStore) Create(ctx context.Context, doc *normalize.WireDocument) (*normalize.WireDocument, error) {
	stored := *doc
	id := uuid.New()
	stored.ID = id.String()

	raw, err := json.Marshal(&stored)
	if err != nil {
		return nil, &TransportError{Op: "save", Message: "failed to encode document", Cause: err}
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO resumes (id, user_id, doc) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET doc = $3, updated_at = NOW()`,
		id, s.userID, raw,
	)
	if err != nil {
		return nil, &TransportError{Op: "save", Message: "failed to insert resume", Cause: err}
	}
	return &stored, nil
}

// Update replaces the stored document for an already-identified resume.
func (s *PostgresStore) Update(ctx context.Context, doc *normalize.WireDocument) (*normalize.WireDocument, error) {
	if doc.ID == "" {
		return nil, &TransportError{Op: "save", Message: "update requires a document identifier"}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, &TransportError{Op: "save", Message: "failed to encode document", Cause: err}
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE resumes SET doc = $1, updated_at = NOW() WHERE user_id = $2`,
		raw, s.userID,
	)
	if err != nil {
		return nil, &TransportError{Op: "save", Message: "failed to update resume", Cause: err}
	}
	if tag.RowsAffected() == 0 {
		return nil, &TransportError{Op: "save", Message: "no stored resume to update"}
	}

	out := *doc
	return &out, nil
}
