package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func restore(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
}

func TestDebug_SilentByDefault(t *testing.T) {
	restore(t)
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())
}

func TestDebug_VerboseEnabled(t *testing.T) {
	restore(t)
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("visible %d", 2)
	assert.Contains(t, buf.String(), "[DEBUG] visible 2")
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	restore(t)
	var buf bytes.Buffer
	SetOutput(&buf)

	Warn("counts diverged by %d", 3)
	assert.Contains(t, buf.String(), "[WARN] counts diverged by 3")
}

func TestIsVerbose(t *testing.T) {
	restore(t)
	assert.False(t, IsVerbose())
	SetVerbose(true)
	assert.True(t, IsVerbose())
}
