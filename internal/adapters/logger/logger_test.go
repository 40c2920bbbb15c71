package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autodeps/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Pretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Info("resolved 3 targets")
	l.Warn("target foo has no absolute sources")
	l.Error(zerr.With(zerr.Wrap(errors.New("boom"), "failed to read build log"), "path", "build.log"))
	l.Error(nil)

	want := "resolved 3 targets\n" +
		"! target foo has no absolute sources\n" +
		"✗ Error: failed to read build log\n" +
		"       path: build.log\n" +
		"\n" +
		"  Caused by:\n" +
		"    → boom\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetJSON(true)
	l.SetOutput(buf)

	l.Warn("careful")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "careful", record["msg"])
}

func TestLogger_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetJSON(true)

	l.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}
