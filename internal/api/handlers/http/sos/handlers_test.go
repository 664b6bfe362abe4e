package sos_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"log/slog"

	"github.com/golang/mock/gomock"

	"saheli/internal/api/handlers/http/sos"
	mock_sos "saheli/internal/api/handlers/http/sos/mocks"
	"saheli/internal/domain"
	"saheli/internal/service"
	"saheli/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestActivateSOS_EmptyBody_UsesDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sos.NewMockSOSActivator(ctrl)
	h := sos.NewHandler(newTestLogger(), svc, 5*time.Second)

	want := domain.SOSReport{ContactsNotified: 1, TotalContacts: 1}
	svc.EXPECT().
		Activate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, opts service.ActivateOptions) (domain.SOSReport, error) {
			if opts.Countdown != 5*time.Second {
				t.Errorf("expected default countdown, got %v", opts.Countdown)
			}
			if opts.Prompter != nil {
				t.Errorf("default policy must not dial")
			}
			if opts.Fix != nil {
				t.Errorf("no device fix was supplied")
			}
			return want, nil
		}).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sos/activate", http.NoBody)
	rr := httptest.NewRecorder()
	h.ActivateSOS(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.SOSReport](t, rr)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestActivateSOS_FullRequest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sos.NewMockSOSActivator(ctrl)
	h := sos.NewHandler(newTestLogger(), svc, 5*time.Second)

	svc.EXPECT().
		Activate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, opts service.ActivateOptions) (domain.SOSReport, error) {
			if opts.Countdown != 10*time.Second {
				t.Errorf("expected overridden countdown, got %v", opts.Countdown)
			}
			if opts.Prompter == nil {
				t.Errorf("call policy must set a prompter")
			}
			if opts.Fix == nil || opts.Fix.Lat != 19.076 || opts.Fix.Lng != 72.8777 {
				t.Errorf("device fix not mapped: %+v", opts.Fix)
			}
			return domain.SOSReport{TotalContacts: 2, ContactsNotified: 2}, nil
		}).
		Times(1)

	body := `{"countdown_seconds":10,"call_policy":"call","location":{"lat":19.076,"lng":72.8777,"accuracy":5}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sos/activate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ActivateSOS(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestActivateSOS_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sos.NewMockSOSActivator(ctrl)
	h := sos.NewHandler(newTestLogger(), svc, 5*time.Second)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sos/activate", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()
	h.ActivateSOS(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestActivateSOS_InvalidCallPolicy_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_sos.NewMockSOSActivator(ctrl)
	h := sos.NewHandler(newTestLogger(), svc, 5*time.Second)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sos/activate", bytes.NewBufferString(`{"call_policy":"shout"}`))
	rr := httptest.NewRecorder()
	h.ActivateSOS(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestActivateSOS_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantAction bool
	}{
		{"not authenticated", e.ErrNotAuthenticated, http.StatusUnauthorized, false},
		{"no contacts", e.ErrNoContacts, http.StatusUnprocessableEntity, true},
		{"permission denied", e.ErrPermissionDenied, http.StatusForbidden, true},
		{"position unavailable", e.ErrPositionUnavailable, http.StatusServiceUnavailable, true},
		{"store unavailable", e.ErrStoreUnavailable, http.StatusServiceUnavailable, true},
		{"canceled", e.ErrCanceled, http.StatusRequestTimeout, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock_sos.NewMockSOSActivator(ctrl)
			h := sos.NewHandler(newTestLogger(), svc, 5*time.Second)

			svc.EXPECT().
				Activate(gomock.Any(), gomock.Any()).
				Return(domain.SOSReport{}, e.Wrap("sos.Activate", tc.err)).
				Times(1)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/sos/activate", http.NoBody)
			rr := httptest.NewRecorder()
			h.ActivateSOS(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("expected %d got %d body=%s", tc.wantStatus, rr.Code, rr.Body.String())
			}
			body := decodeJSON[map[string]string](t, rr)
			if _, ok := body["action"]; ok != tc.wantAction {
				t.Fatalf("action presence mismatch: body=%v", body)
			}
		})
	}
}
