package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-labs/askdoc/internal/core/domain"
)

func TestDefaults(t *testing.T) {
	r := Defaults()
	assert.Equal(t, []string{".docx", ".md", ".pdf", ".txt"}, r.Extensions())
}

func TestLookup(t *testing.T) {
	r := Defaults()

	e, err := r.Lookup("notes.txt")
	require.NoError(t, err)
	assert.Contains(t, e.Extensions(), ".txt")

	e, err = r.Lookup("report.pdf")
	require.NoError(t, err)
	assert.Contains(t, e.Extensions(), ".pdf")
}

func TestLookup_CaseInsensitive(t *testing.T) {
	r := Defaults()
	_, err := r.Lookup("README.MD")
	require.NoError(t, err)
}

func TestLookup_UnsupportedExtension(t *testing.T) {
	r := Defaults()

	_, err := r.Lookup("image.png")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	_, err = r.Lookup("noextension")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
