package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPreview_ShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "hello", Preview("hello"))
	assert.Equal(t, "", Preview(""))
}

func TestPreview_ExactLengthUnchanged(t *testing.T) {
	text := strings.Repeat("a", PreviewLength)
	assert.Equal(t, text, Preview(text))
}

func TestPreview_LongTextTruncated(t *testing.T) {
	text := strings.Repeat("a", PreviewLength+50)
	preview := Preview(text)

	assert.Len(t, preview, PreviewLength+3)
	assert.True(t, strings.HasSuffix(preview, "..."))
}

func TestPreview_DoesNotSplitRunes(t *testing.T) {
	// Each rune is 3 bytes, so the 200-byte limit falls mid-rune.
	text := strings.Repeat("日", 100)
	preview := Preview(text)

	assert.True(t, utf8.ValidString(preview))
	assert.True(t, strings.HasSuffix(preview, "..."))
	assert.LessOrEqual(t, len(preview), PreviewLength+3)
	assert.Equal(t, strings.Repeat("日", 66)+"...", preview)
}
