// README: Redis cache for the per-city bike position snapshot.
package bike

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache holds the map-view position list for a short TTL. The endpoint
// is polled by every open map client, so staleness of a few seconds buys
// a large reduction in store reads. There is no invalidation; entries
// simply expire.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func posKey(cityID int64) string {
	return "bikes_pos:city:" + strconv.FormatInt(cityID, 10)
}

func (c *Cache) GetPositions(ctx context.Context, cityID int64) ([]Position, bool) {
	raw, err := c.rdb.Get(ctx, posKey(cityID)).Bytes()
	if err != nil {
		return nil, false
	}
	var positions []Position
	if err := json.Unmarshal(raw, &positions); err != nil {
		return nil, false
	}
	return positions, true
}

func (c *Cache) SetPositions(ctx context.Context, cityID int64, positions []Position) {
	raw, err := json.Marshal(positions)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, posKey(cityID), raw, c.ttl).Err()
}
