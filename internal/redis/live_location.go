package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"saheli/internal/domain"
	"saheli/pkg/e"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// LiveLocationCache holds each user's last shared fix under a TTL. Stale
// entries simply expire, so a user who stops sharing disappears from the map.
type LiveLocationCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewLiveLocationCache(r *Redis) *LiveLocationCache {
	return &LiveLocationCache{
		client: r.Client,
		prefix: "live_location:",
		ttl:    5 * time.Minute,
	}
}

func (c *LiveLocationCache) SetLive(ctx context.Context, loc domain.LiveLocation) error {
	b, err := json.Marshal(loc)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+loc.UserID.String(), b, c.ttl).Err()
}

func (c *LiveLocationCache) GetLive(ctx context.Context, userID uuid.UUID) (domain.LiveLocation, error) {
	var loc domain.LiveLocation

	data, err := c.client.Get(ctx, c.prefix+userID.String()).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return loc, e.ErrNotFound
		}
		return loc, err
	}
	if err := json.Unmarshal(data, &loc); err != nil {
		return loc, err
	}
	return loc, nil
}
