package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultLogFile = "logs/gateway.log"

	fileBufferSize    = 32 * 1024
	consoleBufferSize = 1024
)

type Options struct {
	// Level is a logrus level name; anything unparsable falls back to info.
	Level string
	// File is the JSON log destination. Empty disables file output.
	File string
	// Console mirrors every entry to Stdout.
	Console bool
}

// Logger owns the logrus instance and the asynchronous sinks behind it.
type Logger struct {
	*logrus.Logger
	closers []func()
}

func NewLogger(opts Options) (*Logger, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	l.SetLevel(parseLevel(opts.Level))

	out := &Logger{Logger: l}

	if opts.File == "" {
		l.SetOutput(os.Stdout)
		return out, nil
	}

	logFile := filepath.Clean(opts.File)
	if strings.Contains(logFile, "..") {
		return nil, fmt.Errorf("invalid log file path %q", opts.File)
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	fileWriter, err := NewAsyncFileWriter(logFile, fileBufferSize)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	l.SetOutput(fileWriter)
	out.closers = append(out.closers, func() {
		fileWriter.Close()
		if dropped := fileWriter.Dropped(); dropped > 0 {
			fmt.Fprintf(os.Stderr, "logger: %d log lines dropped on a full buffer\n", dropped)
		}
	})

	if opts.Console {
		hook := NewAsyncConsoleHook(os.Stdout, consoleBufferSize)
		l.AddHook(hook)
		out.closers = append(out.closers, hook.Close)
	}

	return out, nil
}

// Close flushes and releases the sinks in reverse order of creation.
func (l *Logger) Close() {
	for i := len(l.closers) - 1; i >= 0; i-- {
		l.closers[i]()
	}
	l.closers = nil
	l.SetOutput(io.Discard)
}

func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
