package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Repository", "record added", map[string]interface{}{
		"name": "Blackbird",
	})

	out := buf.String()
	assert.Contains(t, out, `"component":"Repository"`)
	assert.Contains(t, out, `"name":"Blackbird"`)
	assert.Contains(t, out, "record added")
}

func TestZerologAdapterLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("FileStore", "collection saved", nil)
	log.Info("FileStore", "ignored", nil)
	assert.Empty(t, buf.String())

	log.Error("FileStore", errors.New("disk full"), nil)
	assert.Contains(t, buf.String(), "disk full")
}
