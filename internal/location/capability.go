// Package location adapts the live-location cache to the LocationCapability
// contract for server-side activations. Mobile clients running the workflow
// locally satisfy the same contract with the device GPS instead.
package location

import (
	"context"
	"fmt"
	"time"

	"saheli/internal/domain"

	"github.com/google/uuid"
)

type CacheReader interface {
	GetLive(ctx context.Context, userID uuid.UUID) (domain.LiveLocation, error)
}

// CachedCapability serves the user's last shared fix. Permission prompting
// happens on the device before a fix ever reaches the cache, so the server
// side always reports granted; a user who never shared simply has no fix.
type CachedCapability struct {
	cache  CacheReader
	maxAge time.Duration
}

func NewCachedCapability(cache CacheReader, maxAge time.Duration) *CachedCapability {
	if maxAge <= 0 {
		maxAge = 5 * time.Minute
	}
	return &CachedCapability{cache: cache, maxAge: maxAge}
}

func (c *CachedCapability) RequestPermission(ctx context.Context, userID uuid.UUID) (bool, error) {
	return true, nil
}

func (c *CachedCapability) CurrentFix(ctx context.Context, userID uuid.UUID) (domain.Location, error) {
	live, err := c.cache.GetLive(ctx, userID)
	if err != nil {
		return domain.Location{}, fmt.Errorf("location.CurrentFix: %w", err)
	}
	if age := time.Since(live.UpdatedAt); age > c.maxAge {
		return domain.Location{}, fmt.Errorf("location.CurrentFix: last fix is %s old", age.Round(time.Second))
	}
	return domain.Location{Lat: live.Lat, Lng: live.Lng, Accuracy: live.Accuracy}, nil
}
