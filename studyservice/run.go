// Package studyservice boots the studyhub HTTP server.
package studyservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/studyhub/studyhub/internal/ai"
	"github.com/studyhub/studyhub/internal/api"
	"github.com/studyhub/studyhub/internal/config"
	"github.com/studyhub/studyhub/internal/logger"
	"github.com/studyhub/studyhub/internal/store/memstore"
)

// Run starts the studyhub HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("studyhub")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("http_port", cfg.HTTPPort).
		Str("demo_user", cfg.DemoUserID).
		Str("openai_model", cfg.OpenAIModel).
		Msg("Study service starting")

	if cfg.OpenAIAPIKey == "" && cfg.IsProduction() {
		return fmt.Errorf("STUDYHUB_OPENAI_API_KEY must be set in production")
	}

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := memstore.New()
	st.Seed(cfg.DemoUserID)

	gen := ai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	router := api.NewRouter(st, gen, cfg.DemoUserID)

	server := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second, // generation endpoints wait on the model
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}
