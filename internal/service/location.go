package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"saheli/internal/domain"
	"saheli/pkg/e"

	"github.com/google/uuid"
)

// acquireLocation takes one high-accuracy fix for the activation. Permission
// comes first; a denial aborts the whole activation before any dispatch.
func (s *SOSService) acquireLocation(ctx context.Context, userID uuid.UUID) (domain.Location, error) {
	granted, err := s.location.RequestPermission(ctx, userID)
	if err != nil {
		return domain.Location{}, fmt.Errorf("sos.acquireLocation.permission: %v: %w", err, e.ErrPositionUnavailable)
	}
	if !granted {
		return domain.Location{}, e.Wrap("sos.acquireLocation", e.ErrPermissionDenied)
	}

	fix, err := s.location.CurrentFix(ctx, userID)
	if err != nil {
		return domain.Location{}, fmt.Errorf("sos.acquireLocation.fix: %v: %w", err, e.ErrPositionUnavailable)
	}
	return fix, nil
}

// TrackingSession owns the live-location sharing lifecycle: an explicit
// start/stop state machine instead of a process-wide flag. Fixes are pushed
// to the live-location store on an interval until Stop or ctx cancellation.
type TrackingSession struct {
	capability LocationCapability
	live       LiveLocationStore
	logger     *slog.Logger
	interval   time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewTrackingSession(capability LocationCapability, live LiveLocationStore, interval time.Duration, logger *slog.Logger) *TrackingSession {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &TrackingSession{
		capability: capability,
		live:       live,
		logger:     logger,
		interval:   interval,
	}
}

// Start begins sharing for userID. Starting an already-active session is a
// no-op.
func (t *TrackingSession) Start(ctx context.Context, userID uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return nil
	}

	granted, err := t.capability.RequestPermission(ctx, userID)
	if err != nil {
		return fmt.Errorf("tracking.Start.permission: %v: %w", err, e.ErrPositionUnavailable)
	}
	if !granted {
		return e.Wrap("tracking.Start", e.ErrPermissionDenied)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	t.cancel = cancel
	go t.run(runCtx, userID)

	t.logger.Info("location tracking started", slog.String("user_id", userID.String()))
	return nil
}

func (t *TrackingSession) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel == nil {
		return
	}
	t.cancel()
	t.cancel = nil
	t.logger.Info("location tracking stopped")
}

func (t *TrackingSession) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// TrackingManager hands out one TrackingSession per user so concurrent
// requests from the same user share lifecycle state.
type TrackingManager struct {
	capability LocationCapability
	live       LiveLocationStore
	logger     *slog.Logger
	interval   time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*TrackingSession
}

func NewTrackingManager(capability LocationCapability, live LiveLocationStore, interval time.Duration, logger *slog.Logger) *TrackingManager {
	return &TrackingManager{
		capability: capability,
		live:       live,
		logger:     logger,
		interval:   interval,
		sessions:   make(map[uuid.UUID]*TrackingSession),
	}
}

func (m *TrackingManager) session(userID uuid.UUID) *TrackingSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		s = NewTrackingSession(m.capability, m.live, m.interval, m.logger)
		m.sessions[userID] = s
	}
	return s
}

func (m *TrackingManager) Start(ctx context.Context, userID uuid.UUID) error {
	return m.session(userID).Start(ctx, userID)
}

func (m *TrackingManager) Stop(userID uuid.UUID) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	m.mu.Unlock()
	if ok {
		s.Stop()
	}
}

func (m *TrackingManager) Active(userID uuid.UUID) bool {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	m.mu.Unlock()
	return ok && s.Active()
}

func (t *TrackingSession) run(ctx context.Context, userID uuid.UUID) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fix, err := t.capability.CurrentFix(ctx, userID)
			if err != nil {
				t.logger.Warn("tracking fix failed", slog.Any("error", err))
				continue
			}
			loc := domain.LiveLocation{
				UserID:    userID,
				Lat:       fix.Lat,
				Lng:       fix.Lng,
				Accuracy:  fix.Accuracy,
				UpdatedAt: time.Now().UTC(),
			}
			if err := t.live.SetLive(ctx, loc); err != nil {
				t.logger.Warn("live location update failed", slog.Any("error", err))
			}
		}
	}
}
