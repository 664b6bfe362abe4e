package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"saheli/internal/api/handlers/http/chat"
	"saheli/internal/api/handlers/http/profile"
	"saheli/internal/api/handlers/http/sos"
	"saheli/internal/api/handlers/http/system"
	"saheli/internal/api/handlers/http/tracking"
	"saheli/internal/config"
	"saheli/internal/middleware"
)

type Handlers struct {
	SOS      *sos.Handler
	Profile  *profile.Handler
	Chat     *chat.Handler
	Tracking *tracking.Handler
	System   *system.Handler
}

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, h Handlers) *Server {
	return &Server{
		logger: logger,
		router: InitRouter(h, logger),
		cfg:    *cfg,
	}
}

func InitRouter(h Handlers, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.UserIdentity)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/sos", func(sr chi.Router) {
			sr.Use(middleware.Limit(2, 5, 10*time.Minute, logger))
			sr.Post("/activate", h.SOS.ActivateSOS)
		})

		api.Route("/profile", func(pr chi.Router) {
			pr.Get("/", h.Profile.GetProfile)
			pr.Route("/contacts", func(cr chi.Router) {
				cr.Get("/", h.Profile.ListContacts)
				cr.Post("/", h.Profile.AddContact)
				cr.Delete("/{id}", h.Profile.DeleteContact)
			})
		})

		api.Get("/alerts", h.Profile.ListAlerts)

		api.Route("/tracking", func(tr chi.Router) {
			tr.Post("/location", h.Tracking.ShareLocation)
			tr.Get("/contacts", h.Tracking.ContactsLocations)
			tr.Post("/start", h.Tracking.StartTracking)
			tr.Post("/stop", h.Tracking.StopTracking)
			tr.Get("/status", h.Tracking.TrackingStatus)
		})

		api.Route("/chat", func(cr chi.Router) {
			cr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			cr.Get("/rooms", h.Chat.ListRooms)
			cr.Get("/rooms/{id}/messages", h.Chat.RoomMessages)
			cr.Post("/rooms/{id}/messages", h.Chat.PostMessage)
		})

		api.Get("/health", h.System.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
