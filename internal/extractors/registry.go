// Package extractors selects a text extraction strategy by file
// extension. New formats are supported by registering an extractor,
// not by editing a fixed enumeration.
package extractors

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
	"github.com/halcyon-labs/askdoc/internal/core/ports/driven"
	"github.com/halcyon-labs/askdoc/internal/extractors/docx"
	"github.com/halcyon-labs/askdoc/internal/extractors/pdf"
	"github.com/halcyon-labs/askdoc/internal/extractors/plaintext"
)

// Registry maps file extensions to extractors.
type Registry struct {
	byExt map[string]driven.Extractor
}

// NewRegistry creates a registry holding the given extractors.
// Later registrations win on extension conflicts.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	r := &Registry{byExt: make(map[string]driven.Extractor)}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Defaults returns a registry with the built-in extractors:
// plain text (.txt, .md), PDF (.pdf), and DOCX (.docx).
func Defaults() *Registry {
	return NewRegistry(plaintext.New(), pdf.New(), docx.New())
}

// Register adds an extractor for all of its extensions.
func (r *Registry) Register(e driven.Extractor) {
	for _, ext := range e.Extensions() {
		r.byExt[strings.ToLower(ext)] = e
	}
}

// Lookup returns the extractor for the filename's extension, or
// domain.ErrUnsupportedFormat.
func (r *Registry) Lookup(filename string) (driven.Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	e, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	return e, nil
}

// Extensions returns the registered extensions, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
