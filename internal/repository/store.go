package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joseph-ayodele/docparse/internal/core/confidence"
	"github.com/joseph-ayodele/docparse/internal/entity"
)

// ExtractionStore persists and retrieves parsed extractions.
type ExtractionStore interface {
	Save(ctx context.Context, e *entity.Extraction) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Extraction, error)
	List(ctx context.Context, limit int) ([]*entity.Extraction, error)
}

// Schema is the DDL the caller runs once against a fresh database.
const Schema = `
CREATE TABLE IF NOT EXISTS extractions (
	id          uuid PRIMARY KEY,
	raw_text    text NOT NULL,
	record      jsonb NOT NULL,
	confidence  jsonb NOT NULL,
	created_at  timestamptz NOT NULL DEFAULT now()
);
`

type pgExtractionStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewExtractionStore returns a Postgres-backed ExtractionStore.
func NewExtractionStore(pool *pgxpool.Pool, logger *slog.Logger) ExtractionStore {
	return &pgExtractionStore{pool: pool, logger: logger}
}

func (s *pgExtractionStore) Save(ctx context.Context, e *entity.Extraction) error {
	recordJSON, err := json.Marshal(e.Record)
	if err != nil {
		return err
	}
	scoreJSON, err := json.Marshal(e.Score)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO extractions (id, raw_text, record, confidence, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET record = EXCLUDED.record, confidence = EXCLUDED.confidence`,
		e.ID, e.RawText, recordJSON, scoreJSON, e.CreatedAt)
	if err != nil {
		s.logger.Error("failed to save extraction", "id", e.ID, "error", err)
		return err
	}
	return nil
}

func (s *pgExtractionStore) Get(ctx context.Context, id uuid.UUID) (*entity.Extraction, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, raw_text, record, confidence, created_at FROM extractions WHERE id = $1`, id)
	e, err := scanExtraction(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		s.logger.Error("failed to get extraction", "id", id, "error", err)
		return nil, err
	}
	return e, nil
}

func (s *pgExtractionStore) List(ctx context.Context, limit int) ([]*entity.Extraction, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, raw_text, record, confidence, created_at FROM extractions ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		s.logger.Error("failed to list extractions", "error", err)
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Extraction
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExtraction(row rowScanner) (*entity.Extraction, error) {
	var (
		e          entity.Extraction
		recordJSON []byte
		scoreJSON  []byte
		createdAt  time.Time
	)
	if err := row.Scan(&e.ID, &e.RawText, &recordJSON, &scoreJSON, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(recordJSON, &e.Record); err != nil {
		return nil, err
	}
	var score confidence.Score
	if err := json.Unmarshal(scoreJSON, &score); err != nil {
		return nil, err
	}
	e.Score = score
	e.CreatedAt = createdAt
	return &e, nil
}
