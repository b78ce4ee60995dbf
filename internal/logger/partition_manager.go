package logger

import (
	"context"
	"time"

	"github.com/Lutefd/currency-conversion/internal/repository"
	"github.com/robfig/cron/v3"
)

const (
	partitionSchedule    = "0 0 1 * *"
	partitionMonthsAhead = 3
)

// PartitionManager keeps monthly partitions of the logs table created ahead of
// the current month.
type PartitionManager struct {
	repo repository.LogRepository
	cron *cron.Cron
	now  func() time.Time
}

func NewPartitionManager(repo repository.LogRepository) *PartitionManager {
	c := cron.New()
	pm := &PartitionManager{
		repo: repo,
		cron: c,
		now:  time.Now,
	}

	_, err := c.AddFunc(partitionSchedule, pm.createNextPartitionJob)
	if err != nil {
		Errorf("failed to add partition cron job: %v", err)
	}

	return pm
}

func (pm *PartitionManager) Start(ctx context.Context) error {
	if err := pm.createInitialPartitions(ctx); err != nil {
		return err
	}

	pm.cron.Start()

	go func() {
		<-ctx.Done()
		pm.cron.Stop()
	}()

	return nil
}

func (pm *PartitionManager) createInitialPartitions(ctx context.Context) error {
	start := monthStart(pm.now())
	for i := 0; i < partitionMonthsAhead; i++ {
		if err := pm.repo.CreatePartition(ctx, start.AddDate(0, i, 0)); err != nil {
			return err
		}
	}
	return nil
}

func (pm *PartitionManager) createNextPartition(ctx context.Context) error {
	return pm.repo.CreatePartition(ctx, monthStart(pm.now()).AddDate(0, partitionMonthsAhead, 0))
}

func (pm *PartitionManager) createNextPartitionJob() {
	if err := pm.createNextPartition(context.Background()); err != nil {
		Errorf("failed to create next month partition: %v", err)
	}
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
