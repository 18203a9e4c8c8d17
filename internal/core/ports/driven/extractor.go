package driven

import "context"

// Extractor decodes raw uploaded bytes into plain text.
// Each extractor handles specific file extensions (e.g., ".pdf").
type Extractor interface {
	// Extensions returns the lower-case file extensions this
	// extractor handles, including the leading dot.
	Extensions() []string

	// Extract decodes the raw content into text.
	Extract(ctx context.Context, raw []byte) (string, error)
}
