package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck probes one dependency.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Healthy   bool            `json:"healthy"`
	Checks    map[string]bool `json:"checks"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func RedisCheck(name string, client *redis.Client) HealthCheck {
	return HealthCheck{Name: name, Check: func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}}
}

func MongoCheck(client *mongo.Client) HealthCheck {
	return HealthCheck{Name: "mongo", Check: func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}}
}

// CheckHealth runs every check once and stores the result as the current snapshot.
func CheckHealth(ctx context.Context, checks []HealthCheck) HealthStatus {
	status := HealthStatus{Healthy: true, Checks: make(map[string]bool, len(checks)), CheckedAt: time.Now().UTC()}
	for _, hc := range checks {
		cctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		err := hc.Check(cctx)
		cancel()
		if err != nil {
			GetLogger().Warn("Health check failed", zap.String("dependency", hc.Name), zap.Error(err))
		}
		status.Checks[hc.Name] = err == nil
		status.Healthy = status.Healthy && err == nil
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor checks immediately and then on every interval until ctx is done.
func StartHealthMonitor(ctx context.Context, interval time.Duration, checks []HealthCheck) {
	go func() {
		CheckHealth(ctx, checks)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, checks)
			}
		}
	}()
}
