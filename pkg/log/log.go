package log

import (
	"fmt"
	"io"
	"os"
)

// Logger is used by the LCD core to report diagnostics, such
// as the decoded control register on every write and faults
// raised by illegal transitions.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	w io.Writer
}

// New returns a Logger that writes tagged lines to w, or to
// stdout if w is nil.
func New(w io.Writer) Logger {
	if w == nil {
		w = os.Stdout
	}
	return &logger{w: w}
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.printf("[INFO]\t", format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.printf("[ERROR]\t", format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.printf("[DEBUG]\t", format, args...)
}

func (l *logger) printf(level, format string, args ...interface{}) {
	fmt.Fprintf(l.w, level+format+"\n", args...)
}
