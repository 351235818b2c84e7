package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxRetries   = 3
	defaultDialTimeout  = 5 * time.Second
	defaultReadTimeout  = 3 * time.Second
	defaultWriteTimeout = 3 * time.Second
	defaultPoolSize     = 10
	defaultMinIdleConns = 5
)

type Config struct {
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         string `envconfig:"PORT" default:"6379"`
	Username     string `envconfig:"USERNAME"`
	Password     string `envconfig:"PASSWORD"`
	Database     int    `envconfig:"DATABASE" default:"0"`
	MaxRetries   int    `envconfig:"MAX_RETRIES" default:"3"`
	DialTimeout  int    `envconfig:"DIAL_TIMEOUT" default:"5"`  // в секундах
	ReadTimeout  int    `envconfig:"READ_TIMEOUT" default:"3"`  // в секундах
	WriteTimeout int    `envconfig:"WRITE_TIMEOUT" default:"3"` // в секундах
	PoolSize     int    `envconfig:"POOL_SIZE" default:"10"`
	MinIdleConns int    `envconfig:"MIN_IDLE_CONNS" default:"5"`
}

// secondsOrDefault переводит значение конфига в Duration с дефолтом
func secondsOrDefault(value int, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}
	return time.Duration(value) * time.Second
}

// NewConnection создаёт новое подключение к Redis
func (c *Config) NewConnection() (*redis.Client, error) {
	dialTimeout := secondsOrDefault(c.DialTimeout, defaultDialTimeout)

	poolSize := c.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}

	minIdleConns := c.MinIdleConns
	if minIdleConns <= 0 {
		minIdleConns = defaultMinIdleConns
	}

	maxRetries := c.MaxRetries
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}

	addr := fmt.Sprintf("%s:%s", c.Host, c.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Username:     c.Username,
		Password:     c.Password,
		DB:           c.Database,
		MaxRetries:   maxRetries,
		DialTimeout:  dialTimeout,
		ReadTimeout:  secondsOrDefault(c.ReadTimeout, defaultReadTimeout),
		WriteTimeout: secondsOrDefault(c.WriteTimeout, defaultWriteTimeout),
		PoolSize:     poolSize,
		MinIdleConns: minIdleConns,
	})

	// Проверяем подключение
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}
