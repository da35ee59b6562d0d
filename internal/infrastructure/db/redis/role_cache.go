package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Role names are reference data that changes out of band, if ever; a long
// TTL keeps the cache warm without a manual invalidation path.
const roleCacheTTL = 12 * time.Hour

// RoleCache caches role_id to role_name resolutions used by the user listing.
// Key format: role_name:<role_id>
type RoleCache struct {
	client *redis.Client
}

// NewRoleCache creates a RoleCache wrapping the given Redis client.
func NewRoleCache(client *redis.Client) *RoleCache {
	return &RoleCache{client: client}
}

// GetNames fetches the cached names for the given role ids in one MGET.
// Missing ids are simply absent from the returned map.
func (c *RoleCache) GetNames(ctx context.Context, roleIDs []int) (map[int]string, error) {
	if len(roleIDs) == 0 {
		return map[int]string{}, nil
	}

	keys := make([]string, len(roleIDs))
	for i, id := range roleIDs {
		keys[i] = c.key(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("role cache mget: %w", err)
	}

	names := make(map[int]string, len(roleIDs))
	for i, v := range values {
		if s, ok := v.(string); ok {
			names[roleIDs[i]] = s
		}
	}
	return names, nil
}

// SetNames stores the given resolutions, each with the cache TTL.
func (c *RoleCache) SetNames(ctx context.Context, names map[int]string) error {
	pipe := c.client.Pipeline()
	for id, name := range names {
		pipe.Set(ctx, c.key(id), name, roleCacheTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("role cache set: %w", err)
	}
	return nil
}

func (c *RoleCache) key(roleID int) string {
	return "role_name:" + strconv.Itoa(roleID)
}
