// Package logger configures structured JSON logging for the simulator.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Fields type alias for logrus.Fields.
type Fields = logrus.Fields

var globalLogger *logrus.Logger

func init() {
	globalLogger = newLogger()
}

func newLogger() *logrus.Logger {
	log := logrus.New()

	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}
	if lvl, err := logrus.ParseLevel(strings.ToLower(levelStr)); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	return log
}

// GetLogger returns the process-wide logger.
func GetLogger() *logrus.Logger {
	return globalLogger
}

// SetLevel overrides the log level parsed from LOG_LEVEL.
func SetLevel(level string) {
	if lvl, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		globalLogger.SetLevel(lvl)
	}
}

// EnableFileOutput tees logs to a rotated file in addition to stderr.
func EnableFileOutput(path string) {
	rotated := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
	globalLogger.SetOutput(io.MultiWriter(os.Stderr, rotated))
}
