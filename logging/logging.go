/*
 * OSLC
 *
 * OSL front-end compiler. Adapted from the ECAL logging utilities.
 */

// Package logging provides the leveled logger used by the compiler
// driver to report progress and diagnostics, plus the glue that turns
// a lexer or parser error into a structured, position-aware log line.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"devt.de/krotik/common/datautil"

	"github.com/krotik/oslc/lexer"
	"github.com/krotik/oslc/parser"
)

/*
Logger is the logging interface implementations in this package satisfy.
*/
type Logger interface {
	LogError(v ...interface{})
	LogInfo(v ...interface{})
	LogDebug(v ...interface{})
}

/*
Level represents a logging level.
*/
type Level string

/*
Recognized log levels.
*/
const (
	Debug Level = "debug"
	Info  Level = "info"
	Error Level = "error"
)

/*
LevelLogger wraps a Logger to add level-based filtering.
*/
type LevelLogger struct {
	logger Logger
	level  Level
}

/*
NewLevelLogger wraps logger and filters messages below level.
*/
func NewLevelLogger(logger Logger, level string) (*LevelLogger, error) {
	l := Level(strings.ToLower(level))

	if l != Debug && l != Info && l != Error {
		return nil, fmt.Errorf("invalid log level: %v", l)
	}

	return &LevelLogger{logger, l}, nil
}

/*
NewLevelLoggerAt wraps logger with level-based filtering, taking an
already-validated Level directly (e.g. one returned by
config.Level()), skipping the string parse NewLevelLogger does.
*/
func NewLevelLoggerAt(logger Logger, level Level) *LevelLogger {
	return &LevelLogger{logger, level}
}

/*
Level returns the current log level.
*/
func (ll *LevelLogger) Level() Level {
	return ll.level
}

func (ll *LevelLogger) LogError(v ...interface{}) {
	ll.logger.LogError(v...)
}

func (ll *LevelLogger) LogInfo(v ...interface{}) {
	if ll.level == Info || ll.level == Debug {
		ll.logger.LogInfo(v...)
	}
}

func (ll *LevelLogger) LogDebug(v ...interface{}) {
	if ll.level == Debug {
		ll.logger.LogDebug(v...)
	}
}

/*
MemoryLogger collects log messages in a ring buffer, used by tests that
need to assert on what the driver logged.
*/
type MemoryLogger struct {
	*datautil.RingBuffer
}

/*
NewMemoryLogger returns a new memory logger holding up to size messages.
*/
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{datautil.NewRingBuffer(size)}
}

func (ml *MemoryLogger) LogError(v ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("error: %v", fmt.Sprint(v...)))
}

func (ml *MemoryLogger) LogInfo(v ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprint(v...))
}

func (ml *MemoryLogger) LogDebug(v ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("debug: %v", fmt.Sprint(v...)))
}

/*
Slice returns the contents of the current log as a slice.
*/
func (ml *MemoryLogger) Slice() []string {
	sl := ml.RingBuffer.Slice()
	ret := make([]string, len(sl))
	for i, lm := range sl {
		ret[i] = lm.(string)
	}
	return ret
}

/*
StdOutLogger writes log messages through the standard library's log
package, whose default output is stderr.
*/
type StdOutLogger struct {
	stdlog func(v ...interface{})
}

/*
NewStdOutLogger returns a stdout logger instance.
*/
func NewStdOutLogger() *StdOutLogger {
	return &StdOutLogger{log.Print}
}

func (sl *StdOutLogger) LogError(v ...interface{}) {
	sl.stdlog(fmt.Sprintf("error: %v", fmt.Sprint(v...)))
}

func (sl *StdOutLogger) LogInfo(v ...interface{}) {
	sl.stdlog(fmt.Sprint(v...))
}

func (sl *StdOutLogger) LogDebug(v ...interface{}) {
	sl.stdlog(fmt.Sprintf("debug: %v", fmt.Sprint(v...)))
}

/*
NullLogger discards all log messages.
*/
type NullLogger struct{}

/*
NewNullLogger returns a logger instance that discards everything.
*/
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (nl *NullLogger) LogError(v ...interface{}) {}
func (nl *NullLogger) LogInfo(v ...interface{})  {}
func (nl *NullLogger) LogDebug(v ...interface{}) {}

/*
BufferLogger writes log messages into an io.Writer.
*/
type BufferLogger struct {
	buf io.Writer
}

/*
NewBufferLogger returns a buffer logger instance writing into buf.
*/
func NewBufferLogger(buf io.Writer) *BufferLogger {
	return &BufferLogger{buf}
}

func (bl *BufferLogger) LogError(v ...interface{}) {
	fmt.Fprintln(bl.buf, fmt.Sprintf("error: %v", fmt.Sprint(v...)))
}

func (bl *BufferLogger) LogInfo(v ...interface{}) {
	fmt.Fprintln(bl.buf, fmt.Sprint(v...))
}

func (bl *BufferLogger) LogDebug(v ...interface{}) {
	fmt.Fprintln(bl.buf, fmt.Sprintf("debug: %v", fmt.Sprint(v...)))
}

/*
Diagnostic is a position-carrying compile error, normalized from either
a lexer.Error or a parser.Error so the driver can log both uniformly
without caring which stage raised them.
*/
type Diagnostic struct {
	Source string
	Stage  string // "lexical" or "syntax"
	Line   int
	Column int
	Detail string
}

/*
NewDiagnostic converts err into a Diagnostic if it originates from the
lexer or the parser. ok is false for any other error, which callers
should fall back to logging plainly.
*/
func NewDiagnostic(err error) (Diagnostic, bool) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return Diagnostic{
			Source: lexErr.Source,
			Stage:  "lexical",
			Line:   lexErr.Line,
			Column: lexErr.Column,
			Detail: lexErr.Error(),
		}, true
	}

	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return Diagnostic{
			Source: parseErr.Source,
			Stage:  "syntax",
			Line:   parseErr.Line,
			Column: parseErr.Column,
			Detail: parseErr.Error(),
		}, true
	}

	return Diagnostic{}, false
}

/*
String renders a Diagnostic the way LogCompileError reports it.
*/
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s error: %s", d.Stage, d.Detail)
}

/*
LogCompileError reports err through logger. Lexer and parser errors are
reported via their Diagnostic form, which names the compile stage that
raised them; any other error is logged as-is.
*/
func LogCompileError(logger Logger, err error) {
	if d, ok := NewDiagnostic(err); ok {
		logger.LogError(d.String())
		return
	}
	logger.LogError(err)
}
