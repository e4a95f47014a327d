package logger

import (
	"fmt"
	"io"
	"strings"

	kerrors "github.com/ppc-cli/ppc/internal/errors"

	"github.com/fatih/color"
)

// Level is a log verbosity. Higher values print more.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelNames = []string{"error", "warn", "info", "debug", "trace"}

func (l Level) String() string {
	if l < LevelError || l > LevelTrace {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// Set parses a level name. It lets Level be used as a pflag.Value.
func (l *Level) Set(s string) error {
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Type names the flag value in help output.
func (l *Level) Type() string {
	return "level"
}

// ParseLevel converts a level name into a Level.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelWarn, fmt.Errorf("%q: %w", s, kerrors.ErrInvalidLevel)
}

type Logger struct {
	Level Level
	Out   io.Writer
}

// New returns a Logger writing to out at the given verbosity.
func New(out io.Writer, level Level) Logger {
	return Logger{Level: level, Out: out}
}

// Enabled reports whether messages at level would be written.
func (l Logger) Enabled(level Level) bool {
	return l.Out != nil && level <= l.Level
}

func (l Logger) logf(level Level, prefix, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	fmt.Fprintf(l.Out, prefix+msg+"\n", args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	l.logf(LevelError, color.RedString("[error] "), msg, args...)
}

func (l Logger) Warnf(msg string, args ...any) {
	l.logf(LevelWarn, color.YellowString("[warn] "), msg, args...)
}

func (l Logger) Infof(msg string, args ...any) {
	l.logf(LevelInfo, color.GreenString("[info] "), msg, args...)
}

func (l Logger) Debugf(msg string, args ...any) {
	l.logf(LevelDebug, color.CyanString("[debug] "), msg, args...)
}

func (l Logger) Tracef(msg string, args ...any) {
	l.logf(LevelTrace, color.HiBlackString("[trace] "), msg, args...)
}

// ErrorfAndReturn logs at error level and returns the same message as an error.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	l.Errorf(msg, args...)
	return fmt.Errorf(msg, args...)
}
