package logger

type Logger interface {
	Log(format string, v ...interface{})
	SetPrefix(prefix string)
}

// Nop discards everything. Useful for library callers that bring their own logging.
type Nop struct{}

func (Nop) Log(string, ...interface{}) {}
func (Nop) SetPrefix(string)           {}
