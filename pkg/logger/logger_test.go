package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	t.Run("Success - debug suppressed at info level", func(t *testing.T) {
		var buf bytes.Buffer
		log := newWithWriter(&buf, "info")

		log.Debug("hidden")
		log.Info("shown")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "shown")
	})

	t.Run("Success - debug emitted at debug level", func(t *testing.T) {
		var buf bytes.Buffer
		log := newWithWriter(&buf, "debug")

		log.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("Success - unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		log := newWithWriter(&buf, "chatty")

		log.Debug("hidden")
		log.Warn("shown")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "shown")
	})
}

func TestWithAttachesAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, "info").With("mobile", "9876543210")

	log.Info("code sent")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "9876543210", record["mobile"])
	assert.Equal(t, "code sent", record["msg"])
}
