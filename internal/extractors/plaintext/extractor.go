// Package plaintext extracts text from plain text and Markdown files.
package plaintext

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text documents. Markdown is treated as plain
// text; its markup survives into chunks unchanged.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".txt", ".md"}
}

// Extract decodes the raw content as UTF-8 text.
func (e *Extractor) Extract(_ context.Context, raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: content is not valid UTF-8", domain.ErrExtraction)
	}

	// Normalise line endings so chunk boundaries behave the same on
	// Windows-authored files.
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	return text, nil
}
