package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/autodeps/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_DebugFiltered(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))

	lg.Debug("debug message")

	assert.Empty(t, buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	var handler slog.Handler = logger.NewPrettyHandler(buf, nil)
	handler = handler.WithAttrs([]slog.Attr{slog.String("module", "modA")})
	handler = handler.WithGroup("tree").WithGroup("")

	slog.New(handler).Info("node written", "path", "modA/sub")

	assert.Equal(t, "node written module=modA tree.path=modA/sub\n", buf.String())
}

func TestPrettyHandler_LocationKeysLead(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))

	lg.Warn("invalid compiler invocation",
		"reason", "unknown flag -p",
		"line", "gcc -pthread -c a.c",
		"target", "libfoo.so",
		"module", "modA",
	)

	assert.Equal(t,
		`! invalid compiler invocation module=modA target=libfoo.so line="gcc -pthread -c a.c" reason="unknown flag -p"`+"\n",
		buf.String())
}
