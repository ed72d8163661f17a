// Package logging builds the structured logger shared by commands and widgets.
package logging

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// New returns a JSON logger writing to w. debug forces the debug level;
// otherwise level is parsed as a logrus level name, falling back to warn.
func New(w io.Writer, level string, debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	l.SetLevel(logrus.WarnLevel)
	if level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			l.SetLevel(lvl)
		}
	}
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// ForRun tags every entry of one CLI invocation with a fresh run_id and the
// command name.
func ForRun(l *logrus.Logger, command string) *logrus.Entry {
	return l.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"command": command,
	})
}
