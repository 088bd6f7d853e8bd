package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mock/logger_mock.go -package=mock github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger Interface

type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message interface{}, args ...interface{})
	Warn(message interface{}, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

// Logger is a thin zerolog wrapper accepting either a string or an error as
// the message, with optional printf args.
type Logger struct {
	logger *zerolog.Logger
}

var _ Interface = (*Logger)(nil)

func New(level string) *Logger {
	zerolog.SetGlobalLevel(parseLevel(level))

	skipFrameCount := 3
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + skipFrameCount).
		Logger()

	return &Logger{logger: &logger}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) emit(ev *zerolog.Event, message interface{}, args ...interface{}) {
	var msg string

	switch m := message.(type) {
	case error:
		msg = m.Error()
	case string:
		msg = m
	default:
		msg = fmt.Sprintf("%v", message)
	}

	if len(args) == 0 {
		ev.Msg(msg)

		return
	}

	ev.Msgf(msg, args...)
}

func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.emit(l.logger.Debug(), message, args...)
}

func (l *Logger) Info(message interface{}, args ...interface{}) {
	l.emit(l.logger.Info(), message, args...)
}

func (l *Logger) Warn(message interface{}, args ...interface{}) {
	l.emit(l.logger.Warn(), message, args...)
}

func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.emit(l.logger.Error(), message, args...)
}

// Fatal logs and terminates the process, zerolog exits with status 1.
func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.emit(l.logger.Fatal(), message, args...)
}
