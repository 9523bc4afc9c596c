package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const defaultPrefix = "blog:session:"

// IRedis is a fiber.Storage backed by redis, used to persist sessions.
type IRedis interface {
	fiber.Storage
	Ping(ctx context.Context) error
}

type redisClient struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

func New(addr, password string, db int) IRedis {
	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", addr))

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	r := NewFromClient(client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Ping(ctx); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return r
}

func NewFromClient(client *redis.Client) IRedis {
	return &redisClient{
		client:  client,
		prefix:  defaultPrefix,
		timeout: 3 * time.Second,
	}
}

func (r *redisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get returns nil, nil for unknown keys as fiber.Storage requires.
func (r *redisClient) Get(key string) ([]byte, error) {
	if len(key) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("Session not found for key %s", key))
		return nil, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting session for key %s: %v", key, err))
		return nil, err
	}

	return val, nil
}

func (r *redisClient) Set(key string, val []byte, exp time.Duration) error {
	if len(key) == 0 || len(val) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Set(ctx, r.prefix+key, val, exp).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error setting session for key %s: %v", key, err))
		return err
	}

	return nil
}

func (r *redisClient) Delete(key string) error {
	if len(key) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting session for key %s: %v", key, err))
		return err
	}

	return nil
}

// Reset removes every session under the prefix and leaves other keys alone.
func (r *redisClient) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	return r.client.Del(ctx, keys...).Err()
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
