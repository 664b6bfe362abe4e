package telephony

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"saheli/internal/config"
	"saheli/pkg/e"
)

// voiceInstructions is the TwiML played when an escalation call connects.
const voiceInstructions = "https://handler.twilio.com/twiml/emergency-callout"

// TwilioDialer places escalation calls through the Twilio voice API.
// Dial is fire-and-forget from the escalator's point of view: call completion
// is outside our observability, only call creation can fail.
type TwilioDialer struct {
	client *TwilioClient
	cfg    config.TwilioConfig
	logger *slog.Logger
}

func NewTwilioDialer(client *TwilioClient, cfg config.TwilioConfig, logger *slog.Logger) *TwilioDialer {
	return &TwilioDialer{client: client, cfg: cfg, logger: logger}
}

func (d *TwilioDialer) CanDial() bool {
	return d.cfg.AccountSID != "" && d.cfg.AuthToken != "" && d.cfg.FromNumber != ""
}

func (d *TwilioDialer) Dial(ctx context.Context, phone string) error {
	if !d.CanDial() {
		return e.ErrDialUnsupported
	}

	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", d.cfg.FromNumber)
	form.Set("Url", voiceInstructions)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Calls.json", d.cfg.BaseURL, d.cfg.AccountSID)
	if err := d.client.post(ctx, endpoint, form); err != nil {
		d.logger.Warn("call creation failed", slog.String("phone", phone), slog.Any("error", err))
		return err
	}
	return nil
}
