// Package postgres provides the PostgreSQL application repository.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"loanflow/internal/pipeline"
	"loanflow/pkg/domain"
	"loanflow/pkg/platform/sentinel"
)

// Store persists applications in PostgreSQL. This store is pure I/O; all
// decision logic belongs in the pipeline service.
type Store struct {
	pool *pgxpool.Pool
}

// New constructs a PostgreSQL-backed application repository.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the applications table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS applications (
			id             UUID PRIMARY KEY,
			applicant_name TEXT NOT NULL,
			email          TEXT NOT NULL,
			phone          TEXT NOT NULL,
			amount         DOUBLE PRECISION NOT NULL,
			purpose        TEXT NOT NULL,
			documents      JSONB NOT NULL DEFAULT '[]',
			received_at    TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure applications schema: %w", err)
	}
	return nil
}

type documentRow struct {
	Kind       string `json:"kind"`
	ContentRef string `json:"content_ref"`
}

func (s *Store) Save(ctx context.Context, record pipeline.StoredApplication) error {
	docs := make([]documentRow, 0, len(record.Application.Documents))
	for _, d := range record.Application.Documents {
		docs = append(docs, documentRow{Kind: string(d.Kind), ContentRef: d.ContentRef})
	}
	encoded, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("encode documents: %w", err)
	}

	const query = `
		INSERT INTO applications (id, applicant_name, email, phone, amount, purpose, documents, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.pool.Exec(ctx, query,
		record.ID.String(),
		record.Application.ApplicantName,
		record.Application.Email,
		record.Application.Phone,
		record.Application.Amount,
		record.Application.Purpose,
		encoded,
		record.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("save application: %w", err)
	}
	return nil
}

func (s *Store) FindByID(ctx context.Context, id domain.ApplicationID) (pipeline.StoredApplication, error) {
	const query = `
		SELECT id, applicant_name, email, phone, amount, purpose, documents, received_at
		FROM applications
		WHERE id = $1
	`

	var (
		record  pipeline.StoredApplication
		rawID   string
		encoded []byte
	)
	err := s.pool.QueryRow(ctx, query, id.String()).Scan(
		&rawID,
		&record.Application.ApplicantName,
		&record.Application.Email,
		&record.Application.Phone,
		&record.Application.Amount,
		&record.Application.Purpose,
		&encoded,
		&record.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pipeline.StoredApplication{}, fmt.Errorf("application %s: %w", id, sentinel.ErrNotFound)
		}
		return pipeline.StoredApplication{}, fmt.Errorf("find application: %w", err)
	}

	record.ID, err = domain.ParseApplicationID(rawID)
	if err != nil {
		return pipeline.StoredApplication{}, fmt.Errorf("scan application id: %w", err)
	}

	var docs []documentRow
	if err := json.Unmarshal(encoded, &docs); err != nil {
		return pipeline.StoredApplication{}, fmt.Errorf("decode documents: %w", err)
	}
	for _, d := range docs {
		record.Application.Documents = append(record.Application.Documents, pipeline.Document{
			Kind:       pipeline.DocumentKind(d.Kind),
			ContentRef: d.ContentRef,
		})
	}

	return record, nil
}
