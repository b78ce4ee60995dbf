package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/Lutefd/currency-conversion/internal/logger"
	"github.com/Lutefd/currency-conversion/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) SaveLog(ctx context.Context, log model.Log) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockLogRepository) CreatePartition(ctx context.Context, month time.Time) error {
	args := m.Called(ctx, month)
	return args.Error(0)
}

func (m *MockLogRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	var info, errs bytes.Buffer
	oldInfo, oldError := logger.InfoLogger, logger.ErrorLogger
	logger.InfoLogger = log.New(&info, "", 0)
	logger.ErrorLogger = log.New(&errs, "", 0)
	t.Cleanup(func() {
		logger.InfoLogger, logger.ErrorLogger = oldInfo, oldError
	})
	return &info, &errs
}

func shutdown(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, logger.Shutdown(ctx))
}

func TestLogger_Info(t *testing.T) {
	info, _ := captureOutput(t)
	mockRepo := new(MockLogRepository)
	mockRepo.On("SaveLog", mock.Anything, mock.AnythingOfType("model.Log")).Return(nil)
	mockRepo.On("Close").Return(nil)
	logger.InitLogger(mockRepo, "test-source")

	logger.Info("Test info message")
	shutdown(t)

	assert.Contains(t, info.String(), "Test info message")
	mockRepo.AssertCalled(t, "SaveLog", mock.Anything, mock.MatchedBy(func(log model.Log) bool {
		return log.Level == model.LogLevelInfo && log.Message == "Test info message" && log.Source == "test-source"
	}))
}

func TestLogger_Error(t *testing.T) {
	_, errs := captureOutput(t)
	mockRepo := new(MockLogRepository)
	mockRepo.On("SaveLog", mock.Anything, mock.AnythingOfType("model.Log")).Return(nil)
	mockRepo.On("Close").Return(nil)
	logger.InitLogger(mockRepo, "test-source")

	logger.Errorf("upstream %s failed", "currency-exchange")
	logger.Warnf("slow upstream")
	shutdown(t)

	assert.Contains(t, errs.String(), "upstream currency-exchange failed")
	assert.Contains(t, errs.String(), "WARN slow upstream")
	mockRepo.AssertCalled(t, "SaveLog", mock.Anything, mock.MatchedBy(func(log model.Log) bool {
		return log.Level == model.LogLevelError && log.Message == "upstream currency-exchange failed"
	}))
	mockRepo.AssertCalled(t, "SaveLog", mock.Anything, mock.MatchedBy(func(log model.Log) bool {
		return log.Level == model.LogLevelWarn && log.Message == "slow upstream"
	}))
}

func TestLogger_SaveFailureIsReported(t *testing.T) {
	_, errs := captureOutput(t)
	mockRepo := new(MockLogRepository)
	mockRepo.On("SaveLog", mock.Anything, mock.AnythingOfType("model.Log")).Return(errors.New("db down"))
	mockRepo.On("Close").Return(nil)
	logger.InitLogger(mockRepo, "")

	logger.Info("message")
	shutdown(t)

	assert.Contains(t, errs.String(), "failed to save log: db down")
}

func TestLogger_WithoutSink(t *testing.T) {
	info, _ := captureOutput(t)

	logger.Infof("started on port %d", 8100)

	assert.Contains(t, info.String(), "started on port 8100")
	assert.NoError(t, logger.Shutdown(context.Background()))
}

func TestLogger_Shutdown(t *testing.T) {
	captureOutput(t)
	mockRepo := new(MockLogRepository)
	mockRepo.On("SaveLog", mock.Anything, mock.AnythingOfType("model.Log")).Return(nil)
	mockRepo.On("Close").Return(nil)
	logger.InitLogger(mockRepo, "test-source")

	for i := 0; i < 10; i++ {
		logger.Info("Test shutdown message")
	}
	shutdown(t)

	mockRepo.AssertNumberOfCalls(t, "SaveLog", 10)
	mockRepo.AssertCalled(t, "Close")
}
