// Package logging builds the slog.Logger used by the oasdotnet CLI.
//
// Console logs go to stderr so that stdout stays free for command output
// (file listings, structured results). When stderr is a terminal the console
// handler colors the level; otherwise a plain text handler is used. An
// optional log file receives the same records in text format.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/erraggy/oasdotnet/internal/fileutil"
)

// LevelTrace defines a custom slog level below Debug for very verbose output,
// such as per-file render timings.
const LevelTrace slog.Level = -8

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup builds a logger writing to stderr and, when logFile is set, to that file.
// The returned closer must be closed by the caller; it is never nil.
func Setup(logLevel, logFile string) (*slog.Logger, io.Closer, error) {
	return setup(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), logLevel, logFile)
}

func setup(console io.Writer, color bool, logLevel, logFile string) (*slog.Logger, io.Closer, error) {
	level := ParseLevel(logLevel)

	var handlers []slog.Handler
	if color {
		handlers = append(handlers, &colorHandler{w: console, level: level, mu: &sync.Mutex{}})
	} else {
		handlers = append(handlers, slog.NewTextHandler(console, &slog.HandlerOptions{Level: level}))
	}

	closer := io.Closer(nopCloser{})
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileutil.LogFile)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: failed to open log file: %w", err)
		}
		closer = f
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), closer, nil
	}
	return slog.New(multiHandler(handlers)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// multiHandler fans out records to multiple handlers.
type multiHandler []slog.Handler

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithGroup(name)
	}
	return out
}

type colorHandler struct {
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
	group string
	mu    *sync.Mutex
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	var color, name string
	switch {
	case r.Level >= slog.LevelError:
		color, name = "\033[31m", "ERROR"
	case r.Level >= slog.LevelWarn:
		color, name = "\033[33m", "WARN"
	case r.Level >= slog.LevelInfo:
		color, name = "\033[32m", "INFO"
	case r.Level >= slog.LevelDebug:
		color, name = "\033[34m", "DEBUG"
	default:
		color, name = "\033[90m", "TRACE"
	}
	buf.WriteString(color)
	buf.WriteString(name)
	buf.WriteString("\033[0m ")
	buf.WriteString(r.Message)

	writeAttr := func(a slog.Attr) {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		fmt.Fprintf(&buf, " \033[90m%s=\033[0m%v", key, a.Value.Resolve())
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	next := *h
	if next.group != "" {
		name = next.group + "." + name
	}
	next.group = name
	return &next
}
