// Package logutil provides logging utilities.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	// mu guards out and loggers.
	mu      sync.Mutex
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix. Loggers write nowhere until
// SetOutput or SetOutputFile is called.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags|log.Lmsgprefix)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// the new io.Writer. If the old output was a file opened by SetOutputFile, it
// is closed.
func SetOutput(newout io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	oldout := out
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	if file, ok := oldout.(*logFile); ok {
		file.Close()
	}
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file, which is truncated. If the name is empty, logs are
// discarded.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	SetOutput(&logFile{file})
	return nil
}

type logFile struct{ *os.File }
