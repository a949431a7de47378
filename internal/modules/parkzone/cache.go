// README: Redis cache for per-city zone lists (read side only).
package parkzone

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func zoneKey(cityID int64) string {
	return "zones:city:" + strconv.FormatInt(cityID, 10)
}

// GetZones returns the cached zone list and whether it was present.
// Cache failures degrade to a miss; the store is the source of truth.
func (c *Cache) GetZones(ctx context.Context, cityID int64) ([]Zone, bool) {
	raw, err := c.rdb.Get(ctx, zoneKey(cityID)).Bytes()
	if err != nil {
		return nil, false
	}
	var zones []Zone
	if err := json.Unmarshal(raw, &zones); err != nil {
		return nil, false
	}
	return zones, true
}

func (c *Cache) SetZones(ctx context.Context, cityID int64, zones []Zone) {
	raw, err := json.Marshal(zones)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, zoneKey(cityID), raw, c.ttl).Err()
}

func (c *Cache) Invalidate(ctx context.Context, cityID int64) {
	_ = c.rdb.Del(ctx, zoneKey(cityID)).Err()
}
