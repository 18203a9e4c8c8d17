package domain

import (
	"time"
	"unicode/utf8"
)

// PreviewLength is the number of characters of the first chunk kept as
// a document's content preview.
const PreviewLength = 200

// Document represents one ingested source file.
// It is created once by the ingestion pipeline and never mutated.
type Document struct {
	// ID is the unique identifier, assigned at ingestion.
	ID string

	// Filename is the original upload filename.
	Filename string

	// ContentPreview is the first ~200 characters of the first chunk.
	ContentPreview string

	// ChunkCount is the number of chunks produced from this document.
	ChunkCount int

	// SizeBytes is the size of the raw uploaded content.
	SizeBytes int64

	// UploadedAt is when the document was ingested.
	UploadedAt time.Time
}

// Chunk is one retrievable unit of text within a document.
// Chunks are created in batch during ingestion and are immutable; they
// are destroyed only as part of deleting their document.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the owning Document.
	DocumentID string

	// Filename is the owning document's filename, carried for display.
	Filename string

	// Index is the zero-based position within the document's chunk
	// sequence, assigned in split order.
	Index int

	// Text is a contiguous substring of the source document.
	Text string

	// Embedding is the vector representation of Text.
	Embedding []float32
}

// Preview truncates text to PreviewLength bytes, appending an ellipsis
// when truncated. The cut never splits a multi-byte rune.
func Preview(text string) string {
	if len(text) <= PreviewLength {
		return text
	}
	cut := PreviewLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
