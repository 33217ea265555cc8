package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegoclair/shift-cycle-bot/internal/domain/contract"
	"github.com/redis/go-redis/v9"
)

// redisInstance implements DataManager on top of Redis string keys
type redisInstance struct {
	client       *redis.Client
	settingsRepo contract.SettingsRepo
}

// NewRedisInstance creates a DataManager that stores every setting under
// prefix+key.
func NewRedisInstance(client *redis.Client, prefix string) contract.DataManager {
	return &redisInstance{
		client:       client,
		settingsRepo: newRedisSettingsRepo(client, prefix),
	}
}

func (i *redisInstance) Settings() contract.SettingsRepo {
	return i.settingsRepo
}

// WithTransaction queues every write made by fn into a MULTI/EXEC block.
// Reads inside fn go straight to the server and do not see queued writes.
func (i *redisInstance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	repo := i.settingsRepo.(*redisSettingsRepo)

	_, err := i.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		return fn(&redisTxInstance{
			settingsRepo: &redisSettingsRepo{
				reader: i.client,
				writer: pipe,
				prefix: repo.prefix,
			},
		})
	})
	if err != nil {
		return fmt.Errorf("failed to run redis transaction: %w", err)
	}
	return nil
}

type redisTxInstance struct {
	settingsRepo contract.SettingsRepo
}

func (i *redisTxInstance) Settings() contract.SettingsRepo {
	return i.settingsRepo
}

func (i *redisTxInstance) WithTransaction(context.Context, func(dm contract.DataManager) error) error {
	return fmt.Errorf("nested transactions are not supported")
}

type redisSettingsRepo struct {
	reader redis.Cmdable
	writer redis.Cmdable
	prefix string
}

func newRedisSettingsRepo(client redis.Cmdable, prefix string) *redisSettingsRepo {
	return &redisSettingsRepo{reader: client, writer: client, prefix: prefix}
}

func (r *redisSettingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.reader.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, true, nil
}

func (r *redisSettingsRepo) Set(ctx context.Context, key, value string) error {
	if err := r.writer.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

func (r *redisSettingsRepo) Delete(ctx context.Context, key string) error {
	if err := r.writer.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}
