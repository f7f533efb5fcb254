package phasedeuce

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Level is a console verbosity threshold. A message prints when the
// configured level is at or below the message's own level, so LevelDebug
// shows everything and LevelNone silences the console entirely.
type Level int

// Console levels, least to most severe.
const (
	LevelDebug  Level = 1
	LevelInfo   Level = 2
	LevelWarn   Level = 3
	LevelError  Level = 4
	LevelSystem Level = 5
	LevelNone   Level = 100
)

// ParseLevel maps a level name to its Level. Matching is case-insensitive;
// unknown or empty names fall back to LevelInfo rather than failing, since
// the console threshold is not worth refusing to start over.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "system":
		return LevelSystem
	case "none":
		return LevelNone
	}
	return LevelInfo
}

// Sink receives leveled console messages. Implementations are
// fire-and-forget: emitting a message never returns an error to the caller.
type Sink interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	// System reports an [ OK ] or [ FAIL ] status line.
	System(ok bool, msg string)
}

// Console is the standard Sink: threshold-filtered lines on a writer,
// rendered as
//
//	[ LEVEL ]  message
//
// with a space inside each brace and two spaces before the message.
type Console struct {
	level Level
	w     io.Writer
}

// NewConsole returns a console filtering below level. A nil writer defaults
// to os.Stdout.
func NewConsole(level Level, w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{level: level, w: w}
}

// Debug prints a [ DEBUG ] line.
func (c *Console) Debug(msg string) { c.emit(LevelDebug, "DEBUG", msg) }

// Info prints an [ INFO ] line.
func (c *Console) Info(msg string) { c.emit(LevelInfo, "INFO", msg) }

// Warn prints a [ WARN ] line.
func (c *Console) Warn(msg string) { c.emit(LevelWarn, "WARN", msg) }

// Error prints an [ ERROR ] line.
func (c *Console) Error(msg string) { c.emit(LevelError, "ERROR", msg) }

// System prints an [ OK ] or [ FAIL ] line depending on ok.
func (c *Console) System(ok bool, msg string) {
	status := "OK"
	if !ok {
		status = "FAIL"
	}
	c.emit(LevelSystem, status, msg)
}

func (c *Console) emit(at Level, prefix, msg string) {
	if c.level > at {
		return
	}
	fmt.Fprintf(c.w, "[ %s ]  %s\n", prefix, msg)
}
