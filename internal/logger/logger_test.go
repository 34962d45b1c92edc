package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdoutHandler_Production(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(stdoutHandler(&buf, false))

	log.Debug("hidden")
	log.Info("plan normalized", "shape", "wrapped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "plan normalized", entry["msg"])
	assert.Equal(t, "wrapped", entry["shape"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestStdoutHandler_Development(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(stdoutHandler(&buf, true))

	log.Debug("visible", "user_id", "u1")

	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "user_id=u1")
}

func TestCombine_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := combine(stdoutHandler(&a, false), stdoutHandler(&b, false))

	slog.New(h).Info("hello")

	assert.Contains(t, a.String(), "hello")
	assert.Contains(t, b.String(), "hello")
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
}
