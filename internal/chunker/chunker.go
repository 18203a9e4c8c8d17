// Package chunker splits document text into overlapping fixed-size
// chunks with stable ordering.
package chunker

import "strings"

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultOverlap is the default number of overlapping characters.
const DefaultOverlap = 200

// DefaultSeparator is the default chunk boundary marker.
const DefaultSeparator = "\n"

// Chunker splits text into chunks of at most chunkSize characters.
// Chunks end at the last separator occurrence that fits; when no
// separator fits, the chunk is cut at chunkSize. Each chunk after the
// first begins overlap characters before the previous chunk's end, so
// no characters are ever dropped.
type Chunker struct {
	chunkSize int
	overlap   int
	separator string
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// WithSeparator sets the preferred boundary marker.
func WithSeparator(sep string) Option {
	return func(c *Chunker) {
		c.separator = sep
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
		separator: DefaultSeparator,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Ensure overlap doesn't exceed chunk size
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// Split splits text into ordered chunks. Text at most chunkSize long
// (including empty text) yields exactly one chunk containing the whole
// text, never zero chunks.
func (c *Chunker) Split(text string) []string {
	if len(text) <= c.chunkSize {
		return []string{text}
	}

	chunks := make([]string, 0, len(text)/(c.chunkSize-c.overlap)+1)
	start := 0

	for start < len(text) {
		end := start + c.chunkSize
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}

		// Prefer ending at the last separator that fits. The separator
		// itself stays in the text and opens the next chunk, so the
		// split is lossless.
		if c.separator != "" {
			if i := strings.LastIndex(text[start:end], c.separator); i > 0 {
				end = start + i
			}
		}

		chunks = append(chunks, text[start:end])

		next := end - c.overlap
		if next <= start {
			// Guarantee forward progress for tiny chunks
			next = start + 1
		}
		start = next
	}

	return chunks
}

// ChunkSize returns the configured chunk size.
func (c *Chunker) ChunkSize() int { return c.chunkSize }

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int { return c.overlap }
