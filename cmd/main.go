package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"partyboard/backend"
	"partyboard/config"
	"partyboard/handlers"
	"partyboard/realtime"
	api "partyboard/routes"
	"partyboard/services"
	"partyboard/session"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ListenPort),
		slog.String("api_base_url", cfg.APIBaseURL))

	// Outbound API client and the single-slot session store.
	apiClient := backend.New(cfg.APIBaseURL, cfg.APITimeout)
	store := session.NewStore()

	// Refetch-signal hub for connected scoreboard viewers.
	hub := realtime.NewHub(logger)
	go hub.Run()
	logger.Info("signal hub started")

	// Services
	tournamentService := services.NewTournamentService(apiClient, logger)
	dashboardService := services.NewDashboardService(apiClient, tournamentService)
	scoringService := services.NewScoringService(apiClient, logger)
	leaderboardService := services.NewLeaderboardService(apiClient)
	authService := services.NewAuthService(apiClient, store)
	logger.Info("services initialized")

	// Upstream socket listener: any backend update event refreshes the
	// cached leaderboard and nudges every viewer of that room.
	var listener *realtime.Listener
	listener = realtime.NewListener(cfg.SocketURL, cfg.DebounceWindow, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout)
		defer cancel()
		if _, err := leaderboardService.Refresh(ctx); err != nil {
			logger.Warn("socket-triggered refetch failed", slog.Any("error", err))
		}
		if room := listener.Room(); room != "" {
			hub.SignalRoom(room, "update")
		}
	}, func(state realtime.ConnState) {
		logger.Info("upstream socket state changed", slog.String("state", string(state)))
	}, logger)
	defer listener.Close()

	// HTTP handlers
	homeHandler := handlers.NewHomeHandler(apiClient)
	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, tournamentService, store)
	wizardHandler := handlers.NewWizardHandler(tournamentService, store)
	gameHandler := handlers.NewGameHandler(apiClient, leaderboardService)
	consoleHandler := handlers.NewConsoleHandler(scoringService, store, hub)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService, listener)
	webSocketHandler := handlers.NewWebSocketHandler(hub, listener, logger)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		store,
		homeHandler,
		authHandler,
		dashboardHandler,
		wizardHandler,
		gameHandler,
		consoleHandler,
		leaderboardHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ListenPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
