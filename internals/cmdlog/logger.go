package cmdlog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jwalton/gchalk"
	"github.com/mattn/go-isatty"
)

var colorEnabled = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

func init() {
	if !colorEnabled {
		gchalk.SetLevel(gchalk.LevelNone)
	}
}

// DisableColor turns off colored output everywhere
func DisableColor() {
	colorEnabled = false
	gchalk.SetLevel(gchalk.LevelNone)
}

// ColorEnabled reports whether colored output is used
func ColorEnabled() bool {
	return colorEnabled
}

// Logger loggs pretty stuff to stderr
type Logger struct {
	emojis bool
	base   *log.Logger
}

// New returns a new Logger writing to stderr
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter returns a new Logger writing to w
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		emojis: EmojiSupported(),
		base:   log.NewWithOptions(w, log.Options{Level: log.InfoLevel}),
	}
}

// SetVerbose enables debug output
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.base.SetLevel(log.DebugLevel)
		return
	}
	l.base.SetLevel(log.InfoLevel)
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e
	}
	return ""
}

// Info prints a "normal" line
func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.base.Info(msg, keyvals...)
}

// Success prints a line with a check mark
func (l *Logger) Success(s string) {
	l.base.Info(l.sprintEmoji("✓ ") + s)
}

// Warn will print a warning
func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.base.Warn(msg, keyvals...)
}

// Debug prints only in verbose mode
func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.base.Debug(msg, keyvals...)
}
