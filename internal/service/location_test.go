package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"saheli/internal/service"
	mock_service "saheli/internal/service/mocks"
	"saheli/pkg/e"
)

func TestTrackingSession_StartStopLifecycle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	capability := mock_service.NewMockLocationCapability(ctrl)
	live := mock_service.NewMockLiveLocationStore(ctrl)
	userID := uuid.New()

	// Long interval: the ticker never fires within the test.
	capability.EXPECT().RequestPermission(gomock.Any(), userID).Return(true, nil).Times(1)

	s := service.NewTrackingSession(capability, live, time.Hour, newTestLogger())
	if s.Active() {
		t.Fatal("fresh session must be inactive")
	}

	if err := s.Start(context.Background(), userID); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if !s.Active() {
		t.Fatal("session must be active after start")
	}

	// Second start while active must not re-check permission.
	if err := s.Start(context.Background(), userID); err != nil {
		t.Fatalf("double start must be a no-op: %v", err)
	}

	s.Stop()
	if s.Active() {
		t.Fatal("session must be inactive after stop")
	}

	// Stop on a stopped session is harmless.
	s.Stop()
}

func TestTrackingSession_PermissionDenied(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	capability := mock_service.NewMockLocationCapability(ctrl)
	live := mock_service.NewMockLiveLocationStore(ctrl)
	userID := uuid.New()

	capability.EXPECT().RequestPermission(gomock.Any(), userID).Return(false, nil).Times(1)

	s := service.NewTrackingSession(capability, live, time.Hour, newTestLogger())
	err := s.Start(context.Background(), userID)
	if !errors.Is(err, e.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if s.Active() {
		t.Fatal("denied session must stay inactive")
	}
}

func TestTrackingManager_PerUserSessions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	capability := mock_service.NewMockLocationCapability(ctrl)
	live := mock_service.NewMockLiveLocationStore(ctrl)
	alice, bela := uuid.New(), uuid.New()

	capability.EXPECT().RequestPermission(gomock.Any(), alice).Return(true, nil).Times(1)

	m := service.NewTrackingManager(capability, live, time.Hour, newTestLogger())
	if err := m.Start(context.Background(), alice); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if !m.Active(alice) {
		t.Fatal("alice must be active")
	}
	if m.Active(bela) {
		t.Fatal("bela never started")
	}

	m.Stop(alice)
	if m.Active(alice) {
		t.Fatal("alice must be inactive after stop")
	}

	// Stopping an unknown user is a no-op.
	m.Stop(bela)
}
