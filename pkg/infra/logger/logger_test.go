package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "gateway.log")

	l, err := NewLogger(Options{Level: "debug", File: logFile})
	require.NoError(t, err)

	l.WithField("content_type", "text").Debug("moderated")
	l.Close()

	raw, err := os.ReadFile(logFile)
	require.NoError(t, err)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &line))
	assert.Equal(t, "moderated", line["msg"])
	assert.Equal(t, "text", line["content_type"])
	assert.Equal(t, "debug", line["level"])
	assert.Contains(t, line, "time")
}

func TestNewLogger_RejectsTraversal(t *testing.T) {
	_, err := NewLogger(Options{File: "../outside.log"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, parseLevel(" warn "))
	assert.Equal(t, logrus.InfoLevel, parseLevel(""))
	assert.Equal(t, logrus.InfoLevel, parseLevel("verbose"))
}

func TestAsyncConsoleHook_FlushesOnClose(t *testing.T) {
	out := &syncBuffer{}
	hook := NewAsyncConsoleHook(out, 16)

	l := logrus.New()
	l.SetOutput(&bytes.Buffer{})
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.AddHook(hook)

	l.Info("first")
	l.Info("second")
	hook.Close()

	assert.Equal(t, 2, strings.Count(out.String(), "msg="))
	assert.Contains(t, out.String(), "second")
}
