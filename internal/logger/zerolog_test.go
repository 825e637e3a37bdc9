package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestZerologAdapter(t *testing.T) {
	t.Run("writes component and fields", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewZerolog(&buf, zerolog.InfoLevel)

		log.Info("CountryService", "countries loaded", map[string]interface{}{
			"count":    250,
			"attempts": 2,
		})

		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "info", entries[0]["level"])
		assert.Equal(t, "CountryService", entries[0]["component"])
		assert.Equal(t, "countries loaded", entries[0]["message"])
		assert.EqualValues(t, 250, entries[0]["count"])
		assert.Contains(t, entries[0], "time")
	})

	t.Run("error carries the error text", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewZerolog(&buf, zerolog.InfoLevel)

		log.Error("PopulationController", errors.New("boom"), nil)

		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "error", entries[0]["level"])
		assert.Equal(t, "boom", entries[0]["error"])
		assert.Equal(t, "operation failed", entries[0]["message"])
	})

	t.Run("respects level", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewZerolog(&buf, zerolog.WarnLevel)

		log.Debug("test", "debug message", nil)
		log.Info("test", "info message", nil)
		log.Warning("test", "warning message", nil)

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}
