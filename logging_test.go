package kson

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging_DuplicateKeyThroughGoKit(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = GoKitLogger(log.NewLogfmtLogger(&buf))

	doc, err := ParseString(`{"a":1,"a":2}`, cfg)
	require.NoError(t, err)
	obj, _ := doc.AsObject()
	assert.Equal(t, int64(2), obj.Get("a"))

	out := buf.String()
	assert.Contains(t, out, "key is not unique")
	assert.Contains(t, out, "key=a")
	assert.Contains(t, out, "component=kson-parser")
}

func TestLogging_GoKitLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := level.NewFilter(log.NewLogfmtLogger(&buf), level.AllowError())

	cfg := DefaultConfig()
	cfg.Logger = GoKitLogger(logger)

	_, err := ParseString(`{"a":1,"a":2}`, cfg)
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = ParseString(`[1,]`, cfg)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "JSON parsing failed")
}

func TestLogging_ParseFailure(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	_, err := ParseString("[1,\n  x]", cfg)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `msg="JSON parsing failed"`)
	assert.Contains(t, out, "row=2")
	assert.Contains(t, out, "col=3")
}

func TestLogging_ParseFailureSuppressed(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogErrors = false
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	_, err := ParseString(`{`, cfg)
	require.Error(t, err)
	assert.Empty(t, buf.String())

	// advisory diagnostics are not parse failures
	_, err = ParseString(`{"k":1,"k":1}`, cfg)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
}
