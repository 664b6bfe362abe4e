package service

import (
	"context"
	"log/slog"
	"time"

	"saheli/internal/domain"
	"saheli/pkg/e"
)

// Escalator offers a voice call to each contact, strictly one at a time and
// in directory order. A contact's decision (or timeout) must resolve before
// the next contact is presented.
type Escalator struct {
	dialer        Dialer
	logger        *slog.Logger
	promptTimeout time.Duration
}

func NewEscalator(dialer Dialer, logger *slog.Logger, promptTimeout time.Duration) *Escalator {
	if promptTimeout <= 0 {
		promptTimeout = 15 * time.Second
	}
	return &Escalator{dialer: dialer, logger: logger, promptTimeout: promptTimeout}
}

// Escalate produces exactly one decision per contact, in input order. It never
// fails the activation: dial failures are recorded on the decision.
func (esc *Escalator) Escalate(ctx context.Context, prompter DecisionPrompter, contacts []domain.EmergencyContact) []domain.CallDecision {
	decisions := make([]domain.CallDecision, 0, len(contacts))
	for _, c := range contacts {
		decisions = append(decisions, esc.escalateOne(ctx, prompter, c))
	}
	return decisions
}

type promptOutcome struct {
	choice domain.CallChoice
	err    error
}

func (esc *Escalator) escalateOne(ctx context.Context, prompter DecisionPrompter, c domain.EmergencyContact) domain.CallDecision {
	decision := domain.CallDecision{ContactID: c.ID, ContactName: c.Name}

	promptCtx, cancel := context.WithTimeout(ctx, esc.promptTimeout)
	defer cancel()

	// The prompt races an explicit timer so a stuck prompter can never stall
	// the escalation loop. Buffered: a late answer is discarded, not leaked.
	ch := make(chan promptOutcome, 1)
	go func() {
		choice, err := prompter.PromptCallDecision(promptCtx, c.Name)
		ch <- promptOutcome{choice: choice, err: err}
	}()

	var out promptOutcome
	select {
	case out = <-ch:
	case <-promptCtx.Done():
		decision.Outcome = domain.CallTimedOut
		esc.logger.Info("call prompt timed out", slog.String("contact", c.Name))
		return decision
	}

	switch {
	case out.err != nil:
		// No decision obtained; same as a timeout from the caller's view.
		decision.Outcome = domain.CallTimedOut
		esc.logger.Warn("call prompt failed", slog.String("contact", c.Name), slog.Any("error", out.err))
	case out.choice == domain.ChoiceCall:
		decision.Outcome = domain.CallAccepted
		esc.dial(ctx, c, &decision)
	default:
		decision.Outcome = domain.CallSkipped
	}
	return decision
}

func (esc *Escalator) dial(ctx context.Context, c domain.EmergencyContact, decision *domain.CallDecision) {
	if !esc.dialer.CanDial() {
		decision.DialError = e.ErrDialUnsupported.Error()
		esc.logger.Warn("cannot dial", slog.String("contact", c.Name))
		return
	}
	if err := esc.dialer.Dial(ctx, c.Phone); err != nil {
		decision.DialError = err.Error()
	}
}
