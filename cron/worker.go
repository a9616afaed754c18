package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Refresher reloads a cached dataset and reports how many records it holds.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// StartTherapistRefresher reloads the therapist cache on every tick until ctx
// is cancelled. It blocks; run it in its own goroutine.
func StartTherapistRefresher(ctx context.Context, interval time.Duration, r Refresher, logger *zap.Logger) {
	if interval <= 0 {
		logger.Info("Therapist cache refresher disabled")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Therapist cache refresher shutdown signal received")
			return
		case <-ticker.C:
			runRefresh(ctx, r, logger)
		}
	}
}

func runRefresh(ctx context.Context, r Refresher, logger *zap.Logger) {
	n, err := r.Refresh(ctx)
	if err != nil {
		logger.Error("Therapist cache refresh failed", zap.Error(err))
		return
	}
	logger.Debug("Therapist cache refreshed", zap.Int("count", n))
}
