package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// New returns a stdlib-backed logger tagged with the serving component.
// The prefix sits next to the message so timestamps stay column-aligned.
func New(component string) *log.Logger {
	prefix := fmt.Sprintf("[%s] ", component)
	return log.New(os.Stderr, prefix, log.LstdFlags|log.Lmsgprefix)
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}
