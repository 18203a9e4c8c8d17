package domain

import "time"

// AskOptions configures a question against the index.
type AskOptions struct {
	// DocumentIDs restricts retrieval to the given documents.
	// Empty means all documents are eligible.
	DocumentIDs []string

	// TopK is the number of chunks to retrieve (default 5).
	TopK int
}

// Source is one retrieved chunk that grounded an answer.
// Sources are returned in rank order.
type Source struct {
	// Text is the chunk text handed to the model as context.
	Text string

	// DocumentID is the owning document.
	DocumentID string

	// Filename is the owning document's filename.
	Filename string

	// ChunkIndex is the chunk's position within its document.
	ChunkIndex int

	// Score is the retrieval similarity for this chunk.
	Score float64
}

// Answer is the result of asking a question.
type Answer struct {
	// Text is the model's answer.
	Text string

	// Sources are the retrieved chunks, in rank order.
	Sources []Source

	// Confidence estimates answer reliability in [0,1], derived from
	// the top retrieval similarity. Zero when nothing was retrieved.
	Confidence float64

	// Elapsed is the total processing time.
	Elapsed time.Duration
}

// IngestResult reports a completed ingestion.
type IngestResult struct {
	// DocumentID is the freshly assigned document identifier.
	DocumentID string

	// ChunkCount is the number of chunks indexed.
	ChunkCount int

	// Elapsed is the total processing time.
	Elapsed time.Duration
}
