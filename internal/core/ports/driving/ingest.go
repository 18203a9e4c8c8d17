package driving

import (
	"context"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
)

// IngestService runs the ingestion pipeline for one document:
// extract, chunk, embed, index, record.
type IngestService interface {
	// Ingest processes one uploaded file end-to-end. On any failure no
	// partial state remains visible for the document.
	Ingest(ctx context.Context, filename string, raw []byte) (*domain.IngestResult, error)
}
