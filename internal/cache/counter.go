// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateKeyPrefix is the Valkey key prefix for rate limit buckets.
const rateKeyPrefix = "ratelimit:"

// WindowCounter counts hits per key in fixed time buckets stored in Valkey.
// Each bucket expires on its own once its window has passed.
type WindowCounter struct {
	client *redis.Client
	now    func() time.Time
}

// NewWindowCounter creates a counter backed by the given Valkey client.
func NewWindowCounter(client *redis.Client) *WindowCounter {
	return &WindowCounter{client: client, now: time.Now}
}

// Incr records one hit for key and returns the number of hits in the
// current window, this one included.
func (wc *WindowCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	if window <= 0 {
		return 0, fmt.Errorf("window must be positive, got %v", window)
	}
	bucketKey := BucketKey(key, wc.now(), window)

	var incr *redis.IntCmd
	_, err := wc.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, bucketKey)
		pipe.ExpireNX(ctx, bucketKey, window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", bucketKey, err)
	}
	return incr.Val(), nil
}

// BucketKey names the bucket holding key's hits for the window that
// contains t.
func BucketKey(key string, t time.Time, window time.Duration) string {
	bucket := t.UnixNano() / int64(window)
	return rateKeyPrefix + key + ":" + strconv.FormatInt(bucket, 10)
}
