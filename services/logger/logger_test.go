package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, InfoLevel, ParseLevel(""))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, WarnLevel)

	log.Info("hidden %d", 1)
	log.Warn("shown %d", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[WARN] shown 2")
}

func TestNamedPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, DebugLevel).Named("booking").Named("db")

	log.Debug("hello")

	assert.Contains(t, buf.String(), "[DEBUG] [booking] [db] hello")
}
