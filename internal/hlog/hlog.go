// Package hlog is a small leveled logger used by the Builder and the
// cmd/hdrscan CLI to report progress and warnings while walking a
// corpus. The scanner core (Parser, Root) stays silent: parse
// diagnostics are structured Issue values attached to entities, not
// log lines.
//
// The shape here (a Logger interface, a Helper wrapper, a
// io.Writer-backed standard implementation, level filtering) mirrors
// the Logger/Helper/NewStdLogger/NewFilter/FilterLevel API that
// saferwall-pe's file.go calls into from its own internal/log
// subpackage; this retrieval pack does not carry that package's body,
// so the shape is reconstructed from its call site rather than copied.
package hlog

import (
	"fmt"
	"io"
	"sync"
)

// Level orders log severities from most to least verbose.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Logger is the minimal leveled-logging surface the builder and CLI
// depend on.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. It is the Builder's default so
// library callers never see output unless they opt in.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// StdLogger writes leveled, line-oriented text to an io.Writer.
type StdLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewStdLogger returns a Logger that writes to w.
func NewStdLogger(w io.Writer) *StdLogger {
	return &StdLogger{out: w}
}

func (l *StdLogger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

func (l *StdLogger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *StdLogger) Infof(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *StdLogger) Warnf(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *StdLogger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }

// Filter wraps a Logger, dropping messages below a minimum level.
type Filter struct {
	next Logger
	min  Level
}

// Option configures a Filter.
type Option func(*Filter)

// FilterLevel sets the minimum level a Filter passes through.
func FilterLevel(min Level) Option {
	return func(f *Filter) { f.min = min }
}

// NewFilter wraps next with a level floor, LevelInfo by default.
func NewFilter(next Logger, opts ...Option) *Filter {
	f := &Filter{next: next, min: LevelInfo}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Filter) Debugf(format string, args ...any) {
	if f.min <= LevelDebug {
		f.next.Debugf(format, args...)
	}
}

func (f *Filter) Infof(format string, args ...any) {
	if f.min <= LevelInfo {
		f.next.Infof(format, args...)
	}
}

func (f *Filter) Warnf(format string, args ...any) {
	if f.min <= LevelWarn {
		f.next.Warnf(format, args...)
	}
}

func (f *Filter) Errorf(format string, args ...any) {
	if f.min <= LevelError {
		f.next.Errorf(format, args...)
	}
}

// Helper adds a fixed prefix to every message logged through it,
// matching the "Helper wraps a Logger" shape referenced in
// saferwall-pe/file.go's call site.
type Helper struct {
	next   Logger
	prefix string
}

func NewHelper(next Logger, prefix string) *Helper {
	return &Helper{next: next, prefix: prefix}
}

func (h *Helper) Debugf(format string, args ...any) {
	h.next.Debugf(h.prefix+format, args...)
}

func (h *Helper) Infof(format string, args ...any) {
	h.next.Infof(h.prefix+format, args...)
}

func (h *Helper) Warnf(format string, args ...any) {
	h.next.Warnf(h.prefix+format, args...)
}

func (h *Helper) Errorf(format string, args ...any) {
	h.next.Errorf(h.prefix+format, args...)
}
