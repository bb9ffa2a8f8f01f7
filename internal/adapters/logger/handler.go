package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/buildit/internal/ui/output"
	"go.trai.ch/buildit/internal/ui/style"
)

// PrettyHandler is a slog.Handler that renders each record on one line: a
// level icon, the message and its attributes as key=value pairs.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// prefix qualifies attribute keys added below the current group.
	prefix string
	// fields holds the attributes bound with WithAttrs, already rendered.
	fields string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or to stderr if w
// is nil. Records below opts.Level (default Info) are dropped.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	var b strings.Builder
	if icon != "" {
		b.WriteString(icon)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)
	b.WriteString(h.fields)
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&b, h.prefix, attr)
		return true
	})

	line := h.out.String(b.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

// WithAttrs returns a handler that renders attrs after every message.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var b strings.Builder
	b.WriteString(h.fields)
	for _, attr := range attrs {
		appendAttr(&b, h.prefix, attr)
	}

	next := *h
	next.fields = b.String()
	return &next
}

// WithGroup returns a handler that qualifies later attribute keys with name.
// Groups nest: "a" then "b" yields keys like a.b.key.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	default:
		return "", style.Slate
	}
}

// appendAttr renders attr as " key=value". Group values are flattened into
// dotted keys. Values that would not read back as one token are quoted, so a
// build directory containing spaces stays unambiguous.
func appendAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		inner := prefix
		if attr.Key != "" {
			inner += attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			appendAttr(b, inner, a)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(attr.Key)
	b.WriteByte('=')
	b.WriteString(formatValue(attr.Value.String()))
}

func formatValue(v string) string {
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		return strconv.Quote(v)
	}
	return v
}
