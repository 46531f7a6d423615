package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docparse/internal/core/confidence"
	"github.com/joseph-ayodele/docparse/internal/core/extract"
)

// Extraction is a persisted parse result: the record produced by the core
// parser, its confidence breakdown, and the text it was parsed from.
type Extraction struct {
	ID        uuid.UUID         `json:"id"`
	RawText   string            `json:"raw_text"`
	Record    extract.Record    `json:"record"`
	Score     confidence.Score  `json:"confidence"`
	CreatedAt time.Time         `json:"created_at"`
}
