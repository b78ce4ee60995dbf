package repository

import (
	"context"
	"time"

	"github.com/Lutefd/currency-conversion/internal/model"
)

// LogRepository persists application log entries. Conversion quotes are
// never stored.
type LogRepository interface {
	SaveLog(ctx context.Context, log model.Log) error
	CreatePartition(ctx context.Context, month time.Time) error
	Close() error
}
