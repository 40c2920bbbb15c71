package logger

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// leadingKeys are the pipeline location keys, printed first and in this order.
var leadingKeys = []string{"module", "target", "path", "line"}

// field is one attribute with its group prefix already applied.
type field struct {
	key   string
	base  string
	value string
}

// PrettyHandler is a slog.Handler that produces human-readable, colored output.
// Location attributes lead the attribute list; values with spaces are quoted.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	fields []field
	group  string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   newOutput(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	msg, color := h.headline(r)

	fields := slices.Clone(h.fields)
	r.Attrs(func(attr slog.Attr) bool {
		fields = append(fields, newField(h.group, attr))
		return true
	})

	line := h.out.String(msg).Foreground(color).String()
	if len(fields) > 0 {
		line += " " + h.out.String(layout(fields)).Faint().String()
	}

	_, err := h.out.WriteString(line + "\n")
	return err
}

func (h *PrettyHandler) headline(r slog.Record) (string, termenv.Color) {
	switch r.Level {
	case slog.LevelWarn:
		return iconWarning + " " + r.Message, termenv.RGBColor(colorYellow)
	case slog.LevelError:
		return iconCross + " " + r.Message, termenv.RGBColor(colorRed)
	default:
		return r.Message, termenv.RGBColor(colorSlate)
	}
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := slices.Clone(h.fields)
	for _, attr := range attrs {
		fields = append(fields, newField(h.group, attr))
	}

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		fields: fields,
		group:  h.group,
	}
}

// WithGroup returns a new Handler that prefixes later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	group := name
	if h.group != "" {
		group = h.group + "." + name
	}

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		fields: h.fields,
		group:  group,
	}
}

func newField(group string, attr slog.Attr) field {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}

	value := attr.Value.Resolve().String()
	if value == "" || strings.ContainsAny(value, " \t\"") {
		value = strconv.Quote(value)
	}
	return field{key: key, base: attr.Key, value: value}
}

// layout renders fields with the location keys first, then the rest in record order.
func layout(fields []field) string {
	rank := func(f field) int {
		if i := slices.Index(leadingKeys, f.base); i >= 0 {
			return i
		}
		return len(leadingKeys)
	}
	slices.SortStableFunc(fields, func(a, b field) int {
		return rank(a) - rank(b)
	})

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.key + "=" + f.value
	}
	return strings.Join(parts, " ")
}
