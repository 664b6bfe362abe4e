package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"saheli/internal/config"
	"saheli/internal/domain"
)

// Dispatcher fans the composed alert out to every contact over the SMS
// gateway. Sends run concurrently and independently; the dispatcher always
// waits for every send to settle.
type Dispatcher struct {
	gateway     SMSGateway
	logger      *slog.Logger
	attempts    int
	backoff     time.Duration
	sendTimeout time.Duration
}

func NewDispatcher(gateway SMSGateway, logger *slog.Logger, cfg config.SOSConfig) *Dispatcher {
	d := &Dispatcher{
		gateway:     gateway,
		logger:      logger,
		attempts:    cfg.SendAttempts,
		backoff:     cfg.RetryBackoff,
		sendTimeout: cfg.SendTimeout,
	}
	if d.attempts < 1 {
		d.attempts = 1
	}
	if d.sendTimeout <= 0 {
		d.sendTimeout = 10 * time.Second
	}
	return d
}

// Dispatch returns exactly one result per contact, in input order.
func (d *Dispatcher) Dispatch(ctx context.Context, msg domain.SOSMessage, contacts []domain.EmergencyContact) []domain.DispatchResult {
	results := make([]domain.DispatchResult, len(contacts))

	var wg sync.WaitGroup
	for i, c := range contacts {
		wg.Add(1)
		go func(i int, c domain.EmergencyContact) {
			defer wg.Done()
			results[i] = d.send(ctx, msg, c)
		}(i, c)
	}
	wg.Wait()

	return results
}

// send retries transient failures inside the contact's own goroutine so no
// contact ever blocks another.
func (d *Dispatcher) send(ctx context.Context, msg domain.SOSMessage, c domain.EmergencyContact) domain.DispatchResult {
	res := domain.DispatchResult{
		ContactID:   c.ID,
		ContactName: c.Name,
		Phone:       c.Phone,
	}

	var lastErr error
	for attempt := 1; attempt <= d.attempts; attempt++ {
		if ctx.Err() != nil {
			lastErr = ctx.Err()
			break
		}

		sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
		err := d.gateway.Send(sendCtx, c.Phone, msg.Body)
		cancel()

		if err == nil {
			res.Status = domain.DispatchSent
			return res
		}
		lastErr = err
		d.logger.Warn("sms send failed",
			slog.String("contact", c.Name),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		if attempt < d.attempts {
			select {
			case <-time.After(time.Duration(attempt) * d.backoff):
			case <-ctx.Done():
				lastErr = ctx.Err()
				attempt = d.attempts
			}
		}
	}

	res.Status = domain.DispatchFailed
	if lastErr != nil {
		res.Reason = lastErr.Error()
	} else {
		res.Reason = "transport failure"
	}
	return res
}
