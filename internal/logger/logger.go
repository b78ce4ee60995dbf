package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/Lutefd/currency-conversion/internal/model"
	"github.com/Lutefd/currency-conversion/internal/repository"
)

const defaultSource = "currency-conversion"

var (
	InfoLogger       *log.Logger
	ErrorLogger      *log.Logger
	loggerBufferSize = 1000

	mu       sync.RWMutex
	logChan  chan model.Log
	logRepo  repository.LogRepository
	source   = defaultSource
	sinkDone chan struct{}
)

func init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// InitLogger installs repo as a persistent sink. Entries are written from a
// single background goroutine; without a sink the logger only writes to
// stdout and stderr.
func InitLogger(repo repository.LogRepository, logSource string) {
	mu.Lock()
	defer mu.Unlock()

	if logSource != "" {
		source = logSource
	}
	logRepo = repo
	logChan = make(chan model.Log, loggerBufferSize)
	sinkDone = make(chan struct{})
	go processLogs(repo, logChan, sinkDone)
}

func processLogs(repo repository.LogRepository, entries <-chan model.Log, done chan<- struct{}) {
	defer close(done)
	for entry := range entries {
		if err := repo.SaveLog(context.Background(), entry); err != nil {
			ErrorLogger.Printf("failed to save log: %v", err)
		}
	}
}

func logAsync(level model.LogLevel, message string) {
	mu.RLock()
	entries := logChan
	entry := model.NewLog(level, message, source)
	if entries != nil {
		select {
		case entries <- entry:
		default:
			ErrorLogger.Printf("log channel full. Dropping log: %v", entry)
		}
	}
	mu.RUnlock()

	switch level {
	case model.LogLevelInfo:
		InfoLogger.Output(3, message)
	case model.LogLevelWarn:
		ErrorLogger.Output(3, "WARN "+message)
	default:
		ErrorLogger.Output(3, message)
	}
}

func Info(v ...interface{}) {
	logAsync(model.LogLevelInfo, fmt.Sprint(v...))
}

func Infof(format string, v ...interface{}) {
	logAsync(model.LogLevelInfo, fmt.Sprintf(format, v...))
}

func Warnf(format string, v ...interface{}) {
	logAsync(model.LogLevelWarn, fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...interface{}) {
	logAsync(model.LogLevelError, fmt.Sprintf(format, v...))
}

// Shutdown drains pending entries into the sink and closes it. It is a no-op
// when no sink was installed.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	entries, repo, done := logChan, logRepo, sinkDone
	logChan, logRepo, sinkDone = nil, nil, nil
	mu.Unlock()

	if entries == nil {
		return nil
	}
	close(entries)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return repo.Close()
	}
}
