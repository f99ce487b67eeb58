package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	outMu sync.RWMutex
	out   io.Writer = os.Stdout
)

// SetOutput changes the destination of loggers created afterwards.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	out = w
}

func output() io.Writer {
	outMu.RLock()
	defer outMu.RUnlock()
	return out
}

// NewRotatingFile returns a writer appending to path with size based
// rotation. Sizes are in megabytes, ages in days.
func NewRotatingFile(path string, maxSizeMB, maxBackups, maxAgeDays int) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}, nil
}
