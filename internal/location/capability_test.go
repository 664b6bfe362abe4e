package location_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"saheli/internal/domain"
	"saheli/internal/location"
	"saheli/pkg/e"
)

type stubCache struct {
	loc domain.LiveLocation
	err error
}

func (s stubCache) GetLive(ctx context.Context, userID uuid.UUID) (domain.LiveLocation, error) {
	return s.loc, s.err
}

func TestCurrentFix_FreshEntry(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	cache := stubCache{loc: domain.LiveLocation{
		UserID:    userID,
		Lat:       40.7128,
		Lng:       -74.006,
		Accuracy:  8,
		UpdatedAt: time.Now().UTC(),
	}}

	c := location.NewCachedCapability(cache, 2*time.Minute)
	fix, err := c.CurrentFix(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if fix.Lat != 40.7128 || fix.Lng != -74.006 || fix.Accuracy != 8 {
		t.Fatalf("unexpected fix: %+v", fix)
	}
}

func TestCurrentFix_StaleEntry(t *testing.T) {
	t.Parallel()

	cache := stubCache{loc: domain.LiveLocation{
		UpdatedAt: time.Now().Add(-10 * time.Minute),
	}}

	c := location.NewCachedCapability(cache, 2*time.Minute)
	_, err := c.CurrentFix(context.Background(), uuid.New())
	if err == nil || !strings.Contains(err.Error(), "old") {
		t.Fatalf("expected staleness error, got %v", err)
	}
}

func TestCurrentFix_NoEntry(t *testing.T) {
	t.Parallel()

	cache := stubCache{err: e.ErrNotFound}
	c := location.NewCachedCapability(cache, 2*time.Minute)

	_, err := c.CurrentFix(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error when no fix was ever shared")
	}
}

func TestRequestPermission_AlwaysGranted(t *testing.T) {
	t.Parallel()

	c := location.NewCachedCapability(stubCache{}, 0)
	granted, err := c.RequestPermission(context.Background(), uuid.New())
	if err != nil || !granted {
		t.Fatalf("server-side permission must be granted: %v %v", granted, err)
	}
}
