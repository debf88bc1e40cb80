package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ScanLock serializes scan cycles across service replicas. The in-process
// guard in the scanner already prevents overlap inside one instance, the
// lock extends that to deployments where an external scheduler can hit
// more than one replica.
type ScanLock interface {
	TryAcquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

const scanLockKey = "uptime:scan-lock"

type redisScanLock struct {
	client *redis.Client
	ttl    time.Duration
}

func (l *redisScanLock) TryAcquire(ctx context.Context) (bool, error) {
	ok, err := l.client.SetNX(ctx, scanLockKey, "1", l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("ScanLock.TryAcquire: %w", err)
	}
	return ok, nil
}

func (l *redisScanLock) Release(ctx context.Context) error {
	if err := l.client.Del(ctx, scanLockKey).Err(); err != nil {
		return fmt.Errorf("ScanLock.Release: %w", err)
	}
	return nil
}

func NewRedisScanLock(client *redis.Client, ttl time.Duration) ScanLock {
	return &redisScanLock{
		client: client,
		ttl:    ttl,
	}
}
