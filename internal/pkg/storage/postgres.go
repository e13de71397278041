package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const createDocumentsTable = `
	CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		body       JSONB NOT NULL,
		revision   UUID NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// PostgresStorage keeps each document as a single JSONB row.
type PostgresStorage struct {
	db database.Querier
}

func NewPostgresStorage(ctx context.Context, db database.Querier) (*PostgresStorage, error) {
	if _, err := db.Exec(ctx, createDocumentsTable); err != nil {
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}
	return &PostgresStorage{db: db}, nil
}

func (s *PostgresStorage) Load(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRow(ctx, `SELECT body FROM documents WHERE key = $1`, key).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", key, ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("failed to load document %s: %w", key, err)
	}
	return body, nil
}

func (s *PostgresStorage) Save(ctx context.Context, key string, data []byte) error {
	revision, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate revision: %w", err)
	}

	query := `
		INSERT INTO documents (key, body, revision, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE
		SET body = EXCLUDED.body, revision = EXCLUDED.revision, updated_at = EXCLUDED.updated_at
	`
	if _, err := s.db.Exec(ctx, query, key, string(data), revision.String()); err != nil {
		return fmt.Errorf("failed to save document %s: %w", key, err)
	}

	slog.Debug("Document saved", "document", key, "revision", revision.String())
	return nil
}
