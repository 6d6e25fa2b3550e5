package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const viewsKey = "listing:views"

// ViewCounter keeps per-listing view tallies in a Redis sorted set so the
// trending query is a single ZREVRANGE instead of a Mongo aggregation.
type ViewCounter struct {
	client *redis.Client
}

func NewViewCounter(client *redis.Client) *ViewCounter {
	return &ViewCounter{client: client}
}

// Incr adds delta views to a listing's tally.
func (c *ViewCounter) Incr(ctx context.Context, listingID int64, delta int64) error {
	member := strconv.FormatInt(listingID, 10)
	if err := c.client.ZIncrBy(ctx, viewsKey, float64(delta), member).Err(); err != nil {
		return fmt.Errorf("incr listing views: %w", err)
	}
	return nil
}

// TopListingIDs returns up to limit listing ids ordered by view count,
// most viewed first. Members that fail to parse are skipped.
func (c *ViewCounter) TopListingIDs(ctx context.Context, limit int64) ([]int64, error) {
	if limit <= 0 {
		return nil, nil
	}

	members, err := c.client.ZRevRange(ctx, viewsKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("top listing views: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
