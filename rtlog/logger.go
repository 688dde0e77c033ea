// Package rtlog is the ray tracer's logging facade, ported from the
// teacher's logging.go: a small Logger interface over the standard
// library's log.Logger, with a safe no-op fallback so callers never need a
// nil check.
package rtlog

import (
	"fmt"
	"log"
	"os"
	"sync"
)

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Default is a Logger backed by the standard library's log package,
// splitting warnings/errors to stderr and info/debug to stdout.
type Default struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

func NewDefault(prefix string, debug bool) *Default {
	flags := log.LstdFlags | log.Lmicroseconds
	return &Default{
		debug:  debug,
		prefix: prefix,
		out:    log.New(os.Stdout, "", flags),
		err:    log.New(os.Stderr, "", flags),
	}
}

func (l *Default) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *Default) prefixf(level, format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, msg)
	}
	return fmt.Sprintf("%s: %s", level, msg)
}

func (l *Default) Debugf(format string, args ...any) {
	l.mu.Lock()
	dbg := l.debug
	l.mu.Unlock()
	if !dbg {
		return
	}
	l.out.Print(l.prefixf("DEBUG", format, args...))
}

func (l *Default) Infof(format string, args ...any)  { l.out.Print(l.prefixf("INFO", format, args...)) }
func (l *Default) Warnf(format string, args ...any)  { l.err.Print(l.prefixf("WARN", format, args...)) }
func (l *Default) Errorf(format string, args ...any) { l.err.Print(l.prefixf("ERROR", format, args...)) }

type nop struct{}

// Nop is a Logger that discards everything; used as the zero-value default
// so callers never need to nil-check.
var Nop Logger = nop{}

func (nop) Debugf(string, ...any) {}
func (nop) Infof(string, ...any)  {}
func (nop) Warnf(string, ...any)  {}
func (nop) Errorf(string, ...any) {}
