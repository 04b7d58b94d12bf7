package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"kaomojiworld/internal/config"
	"kaomojiworld/internal/generation"
	"kaomojiworld/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the website",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		svc, err := buildService(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("init generation backend: %w", err)
		}

		handler, err := server.NewServer(cfg, log, svc)
		if err != nil {
			return fmt.Errorf("init server: %w", err)
		}

		srv := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: cfg.GenerateTimeout + 15*time.Second,
			IdleTimeout:  60 * time.Second,
		}

		shutdownCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", srv.Addr).Str("backend", cfg.Backend).Msg("kaomojiworld listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("listen: %w", err)
		case <-shutdownCtx.Done():
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
		return nil
	},
}

func buildService(ctx context.Context, cfg config.Config) (generation.Service, error) {
	switch cfg.Backend {
	case config.BackendGemini:
		return generation.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	default:
		return generation.NewChatClient(cfg.ChatEndpoint, cfg.Model, cfg.APIKey, nil), nil
	}
}
