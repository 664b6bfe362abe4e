// Package telephony wraps the Twilio REST API behind the SMS-gateway and
// dialer contracts the SOS workflow depends on. Any gateway with a synchronous
// send-and-acknowledge contract is substitutable for it.
package telephony

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"saheli/internal/config"
)

type TwilioClient struct {
	cfg    config.TwilioConfig
	http   *http.Client
	logger *slog.Logger
}

func NewTwilioClient(cfg config.TwilioConfig, logger *slog.Logger) *TwilioClient {
	return &TwilioClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Send posts one SMS and reports success only on an explicit 2xx ack.
func (t *TwilioClient) Send(ctx context.Context, toPhone, body string) error {
	form := url.Values{}
	form.Set("To", toPhone)
	form.Set("From", t.cfg.FromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.cfg.BaseURL, t.cfg.AccountSID)
	return t.post(ctx, endpoint, form)
}

func (t *TwilioClient) post(ctx context.Context, endpoint string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio: build request: %w", err)
	}
	req.SetBasicAuth(t.cfg.AccountSID, t.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("twilio: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("twilio: %s", gatewayReason(resp))
}

// gatewayReason pulls Twilio's error message out of the response body, falling
// back to the HTTP status when the body is not the expected JSON shape.
func gatewayReason(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var body struct {
			Message string `json:"message"`
		}
		if jerr := json.Unmarshal(raw, &body); jerr == nil && body.Message != "" {
			return body.Message
		}
	}
	return resp.Status
}
