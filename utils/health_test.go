package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCheckHealth(t *testing.T) {
	Logger = zap.NewNop()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	status := CheckHealth(context.Background(), []HealthCheck{RedisCheck("redis_cache", client)})
	assert.True(t, status.Healthy)
	assert.True(t, status.Checks["redis_cache"])
	assert.Equal(t, status, GetHealthStatus())

	failing := HealthCheck{Name: "mongo", Check: func(context.Context) error { return errors.New("no reachable servers") }}
	status = CheckHealth(context.Background(), []HealthCheck{RedisCheck("redis_cache", client), failing})
	assert.False(t, status.Healthy)
	assert.True(t, status.Checks["redis_cache"])
	assert.False(t, status.Checks["mongo"])
}

func TestStartHealthMonitorStopsWithContext(t *testing.T) {
	Logger = zap.NewNop()
	calls := make(chan struct{}, 10)
	check := HealthCheck{Name: "probe", Check: func(context.Context) error {
		calls <- struct{}{}
		return nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	StartHealthMonitor(ctx, 10*time.Millisecond, []HealthCheck{check})

	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("health monitor never ran")
	}
	cancel()
	assert.Eventually(t, func() bool { return GetHealthStatus().Checks["probe"] }, time.Second, 10*time.Millisecond)
}
