package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-text-toolkit/api"
	"github.com/gcbaptista/go-text-toolkit/config"
	"github.com/gcbaptista/go-text-toolkit/internal/analytics"
	"github.com/gcbaptista/go-text-toolkit/internal/engine"
	internalErrors "github.com/gcbaptista/go-text-toolkit/internal/errors"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand() *cobra.Command {
	var configPath string
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the toolkit over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(configPath, port)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, settings)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path (TOML)")
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to run the server on (overrides the config file)")
	return cmd
}

// loadSettings reads the config file and applies a port override.
func loadSettings(configPath, port string) (config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if configPath != "" {
		log.Printf("Using config file: %s", configPath)
	}

	if port != "" {
		settings.Port = port
		if problems := settings.Validate(); len(problems) > 0 {
			return config.Settings{}, internalErrors.NewValidationError("port", strings.Join(problems, "; "))
		}
	}
	return settings, nil
}

func newRouter(settings config.Settings) *gin.Engine {
	gin.SetMode(settings.GinMode)

	router := gin.New()
	router.Use(gin.Logger(), api.RecoveryMiddleware())
	api.SetupRoutes(router, engine.NewEngine(settings), analytics.NewService(), settings)
	return router
}

func runServer(ctx context.Context, settings config.Settings) error {
	server := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           newRouter(settings),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s...", settings.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
