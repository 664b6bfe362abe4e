package service

import (
	"context"
	"log/slog"
	"time"

	"saheli/internal/domain"
	"saheli/pkg/e"

	"github.com/google/uuid"
)

type activationState string

const (
	stateLocating    activationState = "locating_and_loading_contacts"
	stateComposing   activationState = "composing"
	stateDispatching activationState = "dispatching"
	stateEscalating  activationState = "escalating"
	stateCompleted   activationState = "completed"
	stateFailed      activationState = "failed"
)

// SOSService runs one SOS activation end to end. Re-entrant calls create
// independent activations; nothing is shared across them.
type SOSService struct {
	logger     *slog.Logger
	session    Session
	store      ContactStore
	location   LocationCapability
	dispatcher *Dispatcher
	escalator  *Escalator
	alerts     AlertQueue
}

func NewSOSService(
	logger *slog.Logger,
	session Session,
	store ContactStore,
	location LocationCapability,
	dispatcher *Dispatcher,
	escalator *Escalator,
	alerts AlertQueue,
) *SOSService {
	return &SOSService{
		logger:     logger,
		session:    session,
		store:      store,
		location:   location,
		dispatcher: dispatcher,
		escalator:  escalator,
		alerts:     alerts,
	}
}

type ActivateOptions struct {
	// Countdown delays the activation, racing ctx. Cancellation during the
	// countdown discards the activation with zero side effects.
	Countdown time.Duration
	// Prompter resolves per-contact call decisions; nil skips every call.
	Prompter DecisionPrompter
	// Fix is a device-supplied location. When set, the location capability
	// is not consulted: the device only sends a fix it had permission to
	// take.
	Fix *domain.Location
}

type contactsResult struct {
	name     string
	contacts []domain.EmergencyContact
	err      error
}

type locationResult struct {
	loc domain.Location
	err error
}

// Activate runs one activation. Precondition failures (not authenticated, no
// contacts, permission denied, no fix, store down) abort before any dispatch;
// per-contact send and dial failures never do. Once the countdown has elapsed
// the activation is not cancellable.
func (s *SOSService) Activate(ctx context.Context, opts ActivateOptions) (domain.SOSReport, error) {
	if opts.Countdown > 0 {
		timer := time.NewTimer(opts.Countdown)
		select {
		case <-ctx.Done():
			timer.Stop()
			return domain.SOSReport{}, e.Wrap("sos.Activate.countdown", e.ErrCanceled)
		case <-timer.C:
		}
	}

	// Past the countdown the caller's lifetime no longer matters: a client
	// disconnect must not cancel in-flight sends or call prompts.
	ctx = context.WithoutCancel(ctx)

	userID, ok := s.session.CurrentUserID(ctx)
	if !ok {
		return domain.SOSReport{}, e.Wrap("sos.Activate", e.ErrNotAuthenticated)
	}

	log := s.logger.With(slog.String("user_id", userID.String()))
	log.Info("sos activation", slog.String("state", string(stateLocating)))

	contactsCh := make(chan contactsResult, 1)
	locationCh := make(chan locationResult, 1)
	go func() {
		name, contacts, err := s.loadContacts(ctx, userID)
		contactsCh <- contactsResult{name: name, contacts: contacts, err: err}
	}()
	go func() {
		if opts.Fix != nil {
			locationCh <- locationResult{loc: *opts.Fix}
			return
		}
		loc, err := s.acquireLocation(ctx, userID)
		locationCh <- locationResult{loc: loc, err: err}
	}()

	cres := <-contactsCh
	lres := <-locationCh
	if cres.err != nil {
		log.Warn("sos activation", slog.String("state", string(stateFailed)), slog.Any("error", cres.err))
		return domain.SOSReport{}, cres.err
	}
	if lres.err != nil {
		log.Warn("sos activation", slog.String("state", string(stateFailed)), slog.Any("error", lres.err))
		return domain.SOSReport{}, lres.err
	}

	log.Info("sos activation", slog.String("state", string(stateComposing)))
	msg := ComposeAlert(cres.name, lres.loc)

	log.Info("sos activation",
		slog.String("state", string(stateDispatching)),
		slog.Int("contacts", len(cres.contacts)),
	)
	dispatch := s.dispatcher.Dispatch(ctx, msg, cres.contacts)

	prompter := opts.Prompter
	if prompter == nil {
		prompter = NewPolicyPrompter(domain.ChoiceSkip)
	}
	log.Info("sos activation", slog.String("state", string(stateEscalating)))
	decisions := s.escalator.Escalate(ctx, prompter, cres.contacts)

	report := domain.SOSReport{
		ContactsNotified: countSent(dispatch),
		TotalContacts:    len(cres.contacts),
		Location:         lres.loc,
		Dispatch:         dispatch,
		CallDecisions:    decisions,
	}

	s.recordAlert(ctx, log, userID, report)

	log.Info("sos activation",
		slog.String("state", string(stateCompleted)),
		slog.Int("contacts_notified", report.ContactsNotified),
		slog.Int("total_contacts", report.TotalContacts),
	)
	return report, nil
}

// recordAlert pushes the activation trace onto the alert queue. Best effort:
// a queue failure never fails a completed activation.
func (s *SOSService) recordAlert(ctx context.Context, log *slog.Logger, userID uuid.UUID, report domain.SOSReport) {
	if s.alerts == nil {
		return
	}
	rec := domain.SOSAlertRecord{
		ID:               uuid.New(),
		UserID:           userID,
		Lat:              report.Location.Lat,
		Lng:              report.Location.Lng,
		ContactsNotified: report.ContactsNotified,
		TotalContacts:    report.TotalContacts,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.alerts.Enqueue(ctx, rec); err != nil {
		log.Error("alert enqueue failed", slog.Any("error", err))
	}
}

func countSent(results []domain.DispatchResult) int {
	n := 0
	for _, r := range results {
		if r.Status == domain.DispatchSent {
			n++
		}
	}
	return n
}
