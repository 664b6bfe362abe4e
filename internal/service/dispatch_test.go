package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"saheli/internal/config"
	"saheli/internal/domain"
	"saheli/internal/service"
	mock_service "saheli/internal/service/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func testContacts(n int) []domain.EmergencyContact {
	names := []string{"Asha", "Bela", "Chitra", "Devi"}
	contacts := make([]domain.EmergencyContact, 0, n)
	for i := 0; i < n; i++ {
		contacts = append(contacts, domain.EmergencyContact{
			ID:    uuid.New(),
			Name:  names[i%len(names)],
			Phone: fmt.Sprintf("+91987654321%d", i),
		})
	}
	return contacts
}

func testSOSConfig(attempts int) config.SOSConfig {
	return config.SOSConfig{
		SendAttempts: attempts,
		RetryBackoff: time.Millisecond,
		SendTimeout:  time.Second,
	}
}

func TestDispatch_OneResultPerContact_InOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_service.NewMockSMSGateway(ctrl)
	contacts := testContacts(3)
	msg := domain.SOSMessage{Body: "help"}

	for _, c := range contacts {
		gateway.EXPECT().Send(gomock.Any(), c.Phone, msg.Body).Return(nil).Times(1)
	}

	d := service.NewDispatcher(gateway, newTestLogger(), testSOSConfig(1))
	results := d.Dispatch(context.Background(), msg, contacts)

	if len(results) != len(contacts) {
		t.Fatalf("expected %d results, got %d", len(contacts), len(results))
	}
	for i, r := range results {
		if r.ContactID != contacts[i].ID {
			t.Fatalf("result %d out of order: got contact %s want %s", i, r.ContactID, contacts[i].ID)
		}
		if r.Status != domain.DispatchSent {
			t.Fatalf("result %d: expected sent, got %s (%s)", i, r.Status, r.Reason)
		}
	}
}

func TestDispatch_FailureDoesNotAffectOthers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_service.NewMockSMSGateway(ctrl)
	contacts := testContacts(3)
	msg := domain.SOSMessage{Body: "help"}

	gateway.EXPECT().Send(gomock.Any(), contacts[0].Phone, msg.Body).Return(nil).Times(1)
	gateway.EXPECT().Send(gomock.Any(), contacts[1].Phone, msg.Body).Return(errors.New("gateway 500")).Times(1)
	gateway.EXPECT().Send(gomock.Any(), contacts[2].Phone, msg.Body).Return(nil).Times(1)

	d := service.NewDispatcher(gateway, newTestLogger(), testSOSConfig(1))
	results := d.Dispatch(context.Background(), msg, contacts)

	if results[0].Status != domain.DispatchSent || results[2].Status != domain.DispatchSent {
		t.Fatalf("healthy contacts must still be notified: %+v", results)
	}
	if results[1].Status != domain.DispatchFailed {
		t.Fatalf("expected failed for contact 1, got %s", results[1].Status)
	}
	if results[1].Reason == "" {
		t.Fatal("failed result must carry a reason")
	}
}

func TestDispatch_RetriesTransientFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_service.NewMockSMSGateway(ctrl)
	contacts := testContacts(1)
	msg := domain.SOSMessage{Body: "help"}

	gomock.InOrder(
		gateway.EXPECT().Send(gomock.Any(), contacts[0].Phone, msg.Body).Return(errors.New("timeout")).Times(2),
		gateway.EXPECT().Send(gomock.Any(), contacts[0].Phone, msg.Body).Return(nil).Times(1),
	)

	d := service.NewDispatcher(gateway, newTestLogger(), testSOSConfig(3))
	results := d.Dispatch(context.Background(), msg, contacts)

	if results[0].Status != domain.DispatchSent {
		t.Fatalf("expected sent after retries, got %s (%s)", results[0].Status, results[0].Reason)
	}
}

func TestDispatch_AllAttemptsExhausted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_service.NewMockSMSGateway(ctrl)
	contacts := testContacts(2)
	msg := domain.SOSMessage{Body: "help"}

	gateway.EXPECT().Send(gomock.Any(), gomock.Any(), msg.Body).Return(errors.New("unreachable")).Times(4)

	d := service.NewDispatcher(gateway, newTestLogger(), testSOSConfig(2))
	results := d.Dispatch(context.Background(), msg, contacts)

	for i, r := range results {
		if r.Status != domain.DispatchFailed {
			t.Fatalf("result %d: expected failed, got %s", i, r.Status)
		}
		if r.Reason != "unreachable" {
			t.Fatalf("result %d: expected last error as reason, got %q", i, r.Reason)
		}
	}
}

func TestDispatch_NoContacts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_service.NewMockSMSGateway(ctrl)
	d := service.NewDispatcher(gateway, newTestLogger(), testSOSConfig(1))

	results := d.Dispatch(context.Background(), domain.SOSMessage{Body: "help"}, nil)
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
