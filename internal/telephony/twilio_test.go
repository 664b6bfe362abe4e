package telephony_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"saheli/internal/config"
	"saheli/internal/telephony"
	"saheli/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func testTwilioConfig(baseURL string) config.TwilioConfig {
	return config.TwilioConfig{
		AccountSID: "ACtest",
		AuthToken:  "secret",
		FromNumber: "+15550001111",
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
	}
}

func TestTwilioClient_Send_OK(t *testing.T) {
	t.Parallel()

	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := telephony.NewTwilioClient(testTwilioConfig(srv.URL), newTestLogger())
	if err := client.Send(context.Background(), "+919876543210", "help"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if gotPath != "/2010-04-01/Accounts/ACtest/Messages.json" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotUser != "ACtest" || gotPass != "secret" {
		t.Fatalf("unexpected basic auth: %s / %s", gotUser, gotPass)
	}
	if gotTo != "+919876543210" || gotFrom != "+15550001111" || gotBody != "help" {
		t.Fatalf("unexpected form: to=%q from=%q body=%q", gotTo, gotFrom, gotBody)
	}
}

func TestTwilioClient_Send_GatewayErrorMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":21211,"message":"The 'To' number is not a valid phone number."}`))
	}))
	defer srv.Close()

	client := telephony.NewTwilioClient(testTwilioConfig(srv.URL), newTestLogger())
	err := client.Send(context.Background(), "bad", "help")
	if err == nil {
		t.Fatal("expected error on 4xx")
	}
	if !strings.Contains(err.Error(), "not a valid phone number") {
		t.Fatalf("expected gateway message in error, got %v", err)
	}
}

func TestTwilioClient_Send_NonJSONErrorBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	client := telephony.NewTwilioClient(testTwilioConfig(srv.URL), newTestLogger())
	err := client.Send(context.Background(), "+919876543210", "help")
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected status fallback in error, got %v", err)
	}
}

func TestTwilioDialer_Dial_PostsCall(t *testing.T) {
	t.Parallel()

	var gotPath, gotTo string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotTo = r.PostFormValue("To")
		if r.PostFormValue("Url") == "" {
			t.Error("call creation must carry TwiML url")
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	cfg := testTwilioConfig(srv.URL)
	dialer := telephony.NewTwilioDialer(telephony.NewTwilioClient(cfg, newTestLogger()), cfg, newTestLogger())

	if !dialer.CanDial() {
		t.Fatal("fully configured dialer must report CanDial")
	}
	if err := dialer.Dial(context.Background(), "+919876543210"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotPath != "/2010-04-01/Accounts/ACtest/Calls.json" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotTo != "+919876543210" {
		t.Fatalf("unexpected to: %s", gotTo)
	}
}

func TestTwilioDialer_IncompleteConfig(t *testing.T) {
	t.Parallel()

	cfg := testTwilioConfig("http://localhost:0")
	cfg.FromNumber = ""
	dialer := telephony.NewTwilioDialer(telephony.NewTwilioClient(cfg, newTestLogger()), cfg, newTestLogger())

	if dialer.CanDial() {
		t.Fatal("dialer without a from number must not report CanDial")
	}
	if err := dialer.Dial(context.Background(), "+919876543210"); !errors.Is(err, e.ErrDialUnsupported) {
		t.Fatalf("expected ErrDialUnsupported, got %v", err)
	}
}
