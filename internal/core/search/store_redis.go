// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"

	"github.com/taibuivan/gutensearch/internal/platform/constants"
)

// CacheKey derives the Redis key of a precise request.
func CacheKey(req Request) string {
	sum := blake2b.Sum256([]byte(req.Fingerprint()))
	return constants.RedisPrefixPreciseSearch + hex.EncodeToString(sum[:])
}

// RedisCache keeps precise results for a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

func (cache *RedisCache) Get(ctx context.Context, req Request) ([]ResultRow, bool) {
	raw, err := cache.client.Get(ctx, CacheKey(req)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.WarnContext(ctx, "search_cache_get_failed", slog.Any("error", err))
		}
		return nil, false
	}

	var rows []ResultRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		cache.logger.WarnContext(ctx, "search_cache_decode_failed", slog.Any("error", err))
		return nil, false
	}
	return rows, true
}

func (cache *RedisCache) Set(ctx context.Context, req Request, rows []ResultRow) {
	payload, err := json.Marshal(rows)
	if err != nil {
		cache.logger.WarnContext(ctx, "search_cache_encode_failed", slog.Any("error", err))
		return
	}

	if err := cache.client.Set(ctx, CacheKey(req), payload, cache.ttl).Err(); err != nil {
		cache.logger.WarnContext(ctx, "search_cache_set_failed", slog.Any("error", err))
	}
}

// RedisQueryLog appends entries to a capped list, newest first.
type RedisQueryLog struct {
	client   *redis.Client
	capacity int64
	logger   *slog.Logger
}

func NewRedisQueryLog(client *redis.Client, logger *slog.Logger) *RedisQueryLog {
	return &RedisQueryLog{client: client, capacity: constants.QueryLogCapacity, logger: logger}
}

func (queryLog *RedisQueryLog) Record(ctx context.Context, entry LogEntry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		queryLog.logger.WarnContext(ctx, "query_log_encode_failed", slog.Any("error", err))
		return
	}

	_, err = queryLog.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, constants.RedisKeyQueryLog, payload)
		pipe.LTrim(ctx, constants.RedisKeyQueryLog, 0, queryLog.capacity-1)
		return nil
	})
	if err != nil {
		queryLog.logger.WarnContext(ctx, "query_log_append_failed", slog.Any("error", err))
	}
}
