package helpers

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
	Print(v ...any)
}

type _defaultLogger struct {
	zl zerolog.Logger
}

func newDefaultLogger() _defaultLogger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return _defaultLogger{zl: zerolog.New(output).With().Timestamp().Logger()}
}

func (l *_defaultLogger) Println(v ...any) {
	l.zl.Info().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}
func (l *_defaultLogger) Printf(format string, v ...any) {
	l.zl.Info().Msgf(format, v...)
}
func (l *_defaultLogger) Print(v ...any) {
	l.zl.Info().Msg(fmt.Sprint(v...))
}

var DefaultLogger = newDefaultLogger()

type _silentLogger struct {
}

func (l *_silentLogger) Println(v ...any) {
}
func (l *_silentLogger) Printf(format string, v ...any) {
}
func (l *_silentLogger) Print(v ...any) {
}

var SilentLogger = _silentLogger{}

type _funcLogger struct {
	f func(string)
}

func (l *_funcLogger) Println(v ...any) {
	l.f(fmt.Sprintln(v...))
}
func (l *_funcLogger) Printf(format string, v ...any) {
	l.f(fmt.Sprintf(format, v...))
}
func (l *_funcLogger) Print(v ...any) {
	l.f(fmt.Sprint(v...))
}

func FuncLogger(f func(string)) Logger {
	return &_funcLogger{f}
}
