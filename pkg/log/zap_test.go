package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetupWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{ApplicationName: "weather-finder-test", Level: "info", Output: &buf})
	t.Cleanup(func() { Setup(Options{Level: "info"}) })

	Info("forecast resolved", zap.String("city", "Lisbon"))
	Debug("hidden at info level")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "forecast resolved", entry["msg"])
	assert.Equal(t, "Lisbon", entry["city"])
	assert.Equal(t, "weather-finder-test", entry["logName"])
	assert.Contains(t, entry, "@timestamp")
	assert.Contains(t, entry, "logger_name")
}

func TestSetupFallsBackToInfoOnUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Level: "loud", Output: &buf})
	t.Cleanup(func() { Setup(Options{Level: "info"}) })

	Debugw("skipped")
	Warnf("kept %d", 1)

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "kept 1")
}
