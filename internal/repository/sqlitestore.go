package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/docparse/internal/core/confidence"
	"github.com/joseph-ayodele/docparse/internal/entity"
)

// SQLiteSchema mirrors Schema for the embedded CLI history store.
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS extractions (
	id          text PRIMARY KEY,
	raw_text    text NOT NULL,
	record      text NOT NULL,
	confidence  text NOT NULL,
	created_at  text NOT NULL
);
`

type sqliteExtractionStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLite opens (creating if necessary) a modernc.org/sqlite-backed
// ExtractionStore at path, for the CLI's local run history.
func OpenSQLite(path string, logger *slog.Logger) (ExtractionStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(SQLiteSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &sqliteExtractionStore{db: db, logger: logger}, nil
}

func (s *sqliteExtractionStore) Save(ctx context.Context, e *entity.Extraction) error {
	recordJSON, err := json.Marshal(e.Record)
	if err != nil {
		return err
	}
	scoreJSON, err := json.Marshal(e.Score)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO extractions (id, raw_text, record, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET record = excluded.record, confidence = excluded.confidence`,
		e.ID.String(), e.RawText, string(recordJSON), string(scoreJSON), e.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		s.logger.Error("failed to save extraction", "id", e.ID, "error", err)
	}
	return err
}

func (s *sqliteExtractionStore) Get(ctx context.Context, id uuid.UUID) (*entity.Extraction, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, raw_text, record, confidence, created_at FROM extractions WHERE id = ?`, id.String())
	e, err := scanSQLiteExtraction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

func (s *sqliteExtractionStore) List(ctx context.Context, limit int) ([]*entity.Extraction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, raw_text, record, confidence, created_at FROM extractions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Extraction
	for rows.Next() {
		e, err := scanSQLiteExtraction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanSQLiteExtraction(row rowScanner) (*entity.Extraction, error) {
	var (
		e                       entity.Extraction
		idStr, recordJSON       string
		scoreJSON, createdAtStr string
	)
	if err := row.Scan(&idStr, &e.RawText, &recordJSON, &scoreJSON, &createdAtStr); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	e.ID = id
	if err := json.Unmarshal([]byte(recordJSON), &e.Record); err != nil {
		return nil, err
	}
	var score confidence.Score
	if err := json.Unmarshal([]byte(scoreJSON), &score); err != nil {
		return nil, err
	}
	e.Score = score
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		return nil, err
	}
	e.CreatedAt = createdAt
	return &e, nil
}
