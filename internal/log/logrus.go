package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger abstract interface for internal logging
type Logger interface {
	Error(msgs ...interface{})
	Warn(msgs ...interface{})
	Info(msgs ...interface{})
	Debug(msgs ...interface{})
	Debugf(s string, msgs ...interface{})
	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
}

type logger struct {
	entry *logrus.Entry
}

func (l *logger) Error(msgs ...interface{}) {
	l.entry.Error(msgs...)
}

func (l *logger) Warn(msgs ...interface{}) {
	l.entry.Warn(msgs...)
}

func (l *logger) Info(msgs ...interface{}) {
	l.entry.Info(msgs...)
}

func (l *logger) Debug(msgs ...interface{}) {
	l.entry.Debug(msgs...)
}

func (l *logger) Debugf(s string, msgs ...interface{}) {
	l.entry.Debugf(s, msgs...)
}

func (l *logger) WithError(err error) Logger {
	return NewLoggerFromEntry(l.entry.WithError(err))
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return NewLoggerFromEntry(l.entry.WithField(key, value))
}

// NewLogger construct Logger from logrus.Logger
func NewLogger(log *logrus.Logger) Logger {
	return &logger{entry: logrus.NewEntry(log)}
}

// NewLoggerFromEntry construct Logger from logrus.Entry
func NewLoggerFromEntry(entry *logrus.Entry) Logger {
	return &logger{entry: entry}
}

// NewNop returns a Logger that drops everything, for tests and library callers.
func NewNop() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return NewLogger(l)
}
