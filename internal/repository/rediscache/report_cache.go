// Package rediscache implements the report cache on Redis so several
// server instances can share it.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "compat:"

// ReportCache stores reports as JSON under compat:report:{len(lo)}:{lo}:{hi}.
// The length prefix keeps ids containing ':' from colliding. Each
// profile has a set of the report keys it appears in and an invalidation
// timestamp in unix nanoseconds.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewReportCache returns a cache on client. A zero ttl keeps reports until
// they are invalidated.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl, now: time.Now}
}

func reportKey(k domain.PairKey) string {
	return keyPrefix + "report:" + strconv.Itoa(len(k.Lo)) + ":" + k.Lo + ":" + k.Hi
}

func profileReportsKey(profileID string) string {
	return keyPrefix + "profile:" + profileID + ":reports"
}

func invalidatedKey(profileID string) string {
	return keyPrefix + "profile:" + profileID + ":invalidated"
}

func (c *ReportCache) Get(ctx context.Context, idA, idB string) (*domain.CompatibilityReport, error) {
	want := domain.NewPairKey(idA, idB)
	data, err := c.client.Get(ctx, reportKey(want)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("redis get report: %w", err)
	}

	var report domain.CompatibilityReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decode cached report: %w", err)
	}
	if report.Key() != want {
		return nil, domain.ErrReportNotFound
	}

	stale, err := c.stale(ctx, c.client, &report)
	if err != nil {
		return nil, err
	}
	if stale {
		return nil, domain.ErrReportNotFound
	}
	return &report, nil
}

// Put writes the report unless one of its profiles was invalidated after
// the report was generated. The invalidation keys are watched, so a
// concurrent Invalidate makes Put fail with domain.ErrStaleReport.
func (c *ReportCache) Put(ctx context.Context, report *domain.CompatibilityReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	key := reportKey(report.Key())
	invA, invB := invalidatedKey(report.ProfileA.ID), invalidatedKey(report.ProfileB.ID)

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		stale, err := c.stale(ctx, tx, report)
		if err != nil {
			return err
		}
		if stale {
			return domain.ErrStaleReport
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, c.ttl)
			for _, id := range []string{report.ProfileA.ID, report.ProfileB.ID} {
				setKey := profileReportsKey(id)
				pipe.SAdd(ctx, setKey, key)
				if c.ttl > 0 {
					pipe.Expire(ctx, setKey, c.ttl)
				}
			}
			return nil
		})
		return err
	}, invA, invB)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrStaleReport), errors.Is(err, redis.TxFailedErr):
		return domain.ErrStaleReport
	default:
		return fmt.Errorf("redis put report: %w", err)
	}
}

func (c *ReportCache) Invalidate(ctx context.Context, profileID string) error {
	setKey := profileReportsKey(profileID)
	if err := c.client.Set(ctx, invalidatedKey(profileID), c.now().UnixNano(), 0).Err(); err != nil {
		return fmt.Errorf("redis mark invalidated: %w", err)
	}

	keys, err := c.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return fmt.Errorf("redis list profile reports: %w", err)
	}
	if err := c.client.Del(ctx, append(keys, setKey)...).Err(); err != nil {
		return fmt.Errorf("redis delete profile reports: %w", err)
	}
	return nil
}

// Delete drops the cached report of one pair.
func (c *ReportCache) Delete(ctx context.Context, idA, idB string) error {
	key := reportKey(domain.NewPairKey(idA, idB))
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.SRem(ctx, profileReportsKey(idA), key)
		pipe.SRem(ctx, profileReportsKey(idB), key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis delete report: %w", err)
	}
	return nil
}

func (c *ReportCache) stale(ctx context.Context, cmd redis.Cmdable, report *domain.CompatibilityReport) (bool, error) {
	vals, err := cmd.MGet(ctx, invalidatedKey(report.ProfileA.ID), invalidatedKey(report.ProfileB.ID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis read invalidations: %w", err)
	}
	generated := report.GeneratedAt.UnixNano()
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		at, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return false, fmt.Errorf("parse invalidation timestamp %q: %w", s, err)
		}
		if generated < at {
			return true, nil
		}
	}
	return false, nil
}
