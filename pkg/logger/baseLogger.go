package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
)

// sink is the destination shared by a logger and everything derived from it,
// so lines written from different components never interleave.
type sink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *sink) writeLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.w == nil {
		log.Print(line)
		return
	}
	_, _ = io.WriteString(s.w, line+"\n")
}

// BaseLogger prefixes every line with the component it belongs to, e.g.
// "[spartoo] [client] xml_maj_stock answered 200". Without a writer lines go
// to the standard logger.
type BaseLogger struct {
	out *sink

	mu     sync.RWMutex
	prefix string
}

func NewLogger(writer io.Writer, prefix string) *BaseLogger {
	return &BaseLogger{out: &sink{w: writer}, prefix: prefix}
}

// Log formats one line. Trailing newlines in format are dropped.
func (l *BaseLogger) Log(format string, v ...interface{}) {
	l.mu.RLock()
	prefix := l.prefix
	l.mu.RUnlock()

	line := strings.TrimRight(fmt.Sprintf(format, v...), "\n")
	if prefix != "" {
		line = prefix + " " + line
	}
	l.out.writeLine(line)
}

// WithPrefix derives a logger for a sub-component. It writes to the same
// destination under the extended prefix.
func (l *BaseLogger) WithPrefix(extraPrefix string) *BaseLogger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	prefix := extraPrefix
	if l.prefix != "" {
		prefix = l.prefix + " " + extraPrefix
	}
	return &BaseLogger{out: l.out, prefix: prefix}
}

func (l *BaseLogger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}
