package utils

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	chlog "github.com/charmbracelet/log"
)

// Logger is the application-wide structured logger.
var Logger *chlog.Logger

const (
	debugLevel = "debug"
	infoLevel  = "info"
	warnLevel  = "warn"
	errorLevel = "error"
)

// InitLogger initializes the global logger with level from KAFKA_UTILS_LOG_LEVEL.
// Valid levels: debug, info, warn, error. Output goes to stderr until SetOutput is called.
func InitLogger() {
	if Logger != nil {
		return
	}
	l := chlog.New(os.Stderr)
	l.SetTimeFormat("2006-01-02 15:04:05.000")
	l.SetReportTimestamp(true)
	levelStr := strings.ToLower(strings.TrimSpace(os.Getenv("KAFKA_UTILS_LOG_LEVEL")))
	switch levelStr {
	case debugLevel:
		l.SetLevel(chlog.DebugLevel)
	case warnLevel:
		l.SetLevel(chlog.WarnLevel)
	case errorLevel:
		l.SetLevel(chlog.ErrorLevel)
	default:
		l.SetLevel(chlog.InfoLevel)
	}
	Logger = l
}

// SetLogLevel allows changing level at runtime.
func SetLogLevel(level string) {
	if Logger == nil {
		InitLogger()
	}
	switch strings.ToLower(strings.TrimSpace(level)) {
	case debugLevel:
		Logger.SetLevel(chlog.DebugLevel)
	case infoLevel:
		Logger.SetLevel(chlog.InfoLevel)
	case warnLevel:
		Logger.SetLevel(chlog.WarnLevel)
	case errorLevel:
		Logger.SetLevel(chlog.ErrorLevel)
	}
}

// SetOutput redirects the logger.
func SetOutput(w io.Writer) {
	if Logger == nil {
		InitLogger()
	}
	Logger.SetOutput(w)
}

// LogToFile sends log output to KAFKA_UTILS_LOG_FILE (or kafka-utils.log in the temp dir)
// and returns the opened file. Used while the terminal is owned by the console.
func LogToFile() (*os.File, error) {
	path := os.Getenv("KAFKA_UTILS_LOG_FILE")
	if path == "" {
		path = filepath.Join(os.TempDir(), "kafka-utils.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	SetOutput(f)
	return f, nil
}
