package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/storage/sqlite"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	sweepInterval     = time.Minute
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "portfolio: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	gin.SetMode(cfg.GinMode)

	site := content.Default()
	if err := site.Validate(); err != nil {
		return fmt.Errorf("content: %w", err)
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	m := metrics.New()
	submitter, err := newSubmitter(cfg.Contact)
	if err != nil {
		return err
	}

	sessions, err := session.NewManager(session.Options{
		Projects:     site.Projects,
		Themes:       store,
		DefaultTheme: cfg.DefaultThemeValue(),
		NewContact:   contactFactory(submitter, cfg.Contact, store, m, logger),
		TTL:          cfg.SessionTTL,
		Logger:       logger.Named("session"),
		Active:       m.ActiveSessions,
	})
	if err != nil {
		return err
	}
	defer sessions.Shutdown()

	srv, err := server.New(cfg, site, sessions, store, m, logger.Named("http"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sessions.Run(ctx, sweepInterval)
	go func() {
		if _, err := srv.PurgeOldVisits(ctx); err != nil {
			logger.Warn("privacy cleanup", zap.Error(err))
		}
	}()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", httpServer.Addr), zap.String("contact_transport", cfg.Contact.Transport))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

func newSubmitter(cfg config.ContactConfig) (contact.Submitter, error) {
	if cfg.Transport == config.TransportSMTP {
		mail, err := contact.NewMailSubmitter(contact.MailConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPass,
			To:       cfg.ToEmail,
		})
		if err != nil {
			return nil, fmt.Errorf("smtp contact transport: %w", err)
		}
		return mail, nil
	}
	h, err := contact.NewHTTPSubmitter(cfg.Endpoint, &http.Client{}, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("http contact transport: %w", err)
	}
	return h, nil
}

// contactFactory builds each session's contact form. Every transition is
// counted, and finished submissions are logged to the store by outcome.
func contactFactory(submitter contact.Submitter, cfg config.ContactConfig, store *sqlite.Store, m *metrics.Metrics, logger *zap.Logger) func() (*contact.Controller, error) {
	observe := func(t contact.Transition) {
		m.ContactTransitions.WithLabelValues(t.To.String()).Inc()
		if t.To != contact.StateSuccess && t.To != contact.StateError {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.RecordContactOutcome(ctx, t.To.String()); err != nil {
			logger.Warn("record contact outcome", zap.Error(err))
		}
	}
	return func() (*contact.Controller, error) {
		return contact.New(submitter,
			contact.WithResetDelay(cfg.ResetDelay),
			contact.WithObserver(observe),
		)
	}
}
