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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/orbs"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/web"
)

const shutdownTimeout = 10 * time.Second

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

	logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		return err
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	th := theme.Default()
	if cfg.Orbs.ThemeFile != "" {
		if th, err = theme.Load(cfg.Orbs.ThemeFile); err != nil {
			return err
		}
	}

	// Build the palette now so a bad theme fails at startup rather than on the first request.
	field := orbs.NewField(th)
	if _, err := field.Palette(); err != nil {
		return fmt.Errorf("theme %q: %w", th.Name, err)
	}

	catalog, err := loadCatalog(cfg.ContentFile)
	if err != nil {
		return err
	}

	if !cfg.SMTP.Configured() {
		logger.Warn("SMTP credentials not configured; contact form submissions will fail",
			zap.String("host", cfg.SMTP.Host))
	}
	sender := contact.NewSender(contact.NewSMTPMailer(cfg.SMTP), cfg.SMTP.User, cfg.SMTP.To, logger.Named("contact"))

	srv, err := web.New(web.Options{
		Field:    field,
		Catalog:  catalog,
		Contact:  sender,
		Logger:   logger.Named("http"),
		OrbCount: cfg.Orbs.Count,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", httpServer.Addr), zap.Int("orbs", cfg.Orbs.Count), zap.String("theme", th.Name))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		return content.Default()
	}
	return content.Load(path)
}
