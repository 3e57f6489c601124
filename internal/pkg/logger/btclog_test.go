package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsystem(t *testing.T) {
	t.Run("should forward btclog lines at their level", func(t *testing.T) {
		resetLogger()

		var buf bytes.Buffer
		require.NoError(t, Init(WithLevel("debug"), WithOutput(&buf)))

		l := Subsystem("RPCC", "debug")
		l.Warnf("retrying %s", "getblockcount")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "warn", entry["level"])
		assert.Equal(t, "retrying getblockcount", entry["msg"])
		assert.Equal(t, "RPCC", entry["subsystem"])
	})

	t.Run("should drop lines below the subsystem level", func(t *testing.T) {
		resetLogger()

		var buf bytes.Buffer
		require.NoError(t, Init(WithLevel("debug"), WithOutput(&buf)))

		l := Subsystem("RPCC", "warn")
		l.Infof("connected")
		l.Errorf("failed")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], `"msg":"failed"`)
	})

	t.Run("should default unknown levels to info", func(t *testing.T) {
		resetLogger()

		var buf bytes.Buffer
		require.NoError(t, Init(WithLevel("debug"), WithOutput(&buf)))

		l := Subsystem("RPCC", "loud")
		l.Debugf("hidden")
		l.Infof("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}
