package domain

// Stats describes the state of the index and metadata store.
// TotalChunks and IndexSize are two views of the same logical count
// and are equal in a correctly operating system.
type Stats struct {
	// TotalDocuments is the number of live documents.
	TotalDocuments int

	// TotalChunks is the sum of ChunkCount over all live documents.
	TotalChunks int

	// IndexSize is the number of chunks currently in the vector index.
	IndexSize int

	// Consistent is false when TotalChunks and IndexSize diverge.
	Consistent bool
}

// Status returns a health label for display, mirroring the counts
// consistency check.
func (s Stats) Status() string {
	if s.Consistent {
		return "healthy"
	}
	return "degraded"
}
