package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/VoidMesh/noise/internal/api"
	"github.com/VoidMesh/noise/internal/config"
	"github.com/VoidMesh/noise/internal/logging"
	"github.com/VoidMesh/noise/internal/presets"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.Logging)
	log.Debug("Configuration loaded",
		"port", cfg.Server.Port,
		"max_pixels", cfg.Render.MaxPixels,
		"max_upscale", cfg.Render.MaxUpscale,
		"workers", cfg.Render.Workers,
		"max_concurrent", cfg.Render.MaxConcurrent,
		"log_format", cfg.Logging.Format,
	)

	router := api.SetupRoutes(api.NewHandler(cfg), cfg)
	log.Debug("Preview routes configured", "presets", len(presets.Names()))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("Starting noise preview server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
		log.Debug("Server stopped listening")
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down server...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	} else {
		log.Debug("Server shutdown completed gracefully")
	}

	log.Info("Server exited")
}

func setupLogging(cfg config.LoggingConfig) {
	logging.Configure(logging.Options{
		Level:  logging.ParseLevel(cfg.Level),
		Format: cfg.Format,
		Prefix: "voidmesh-noise",
		Caller: cfg.Format == "pretty" || !cfg.Structured,
	})
}
