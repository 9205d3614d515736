package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"partyboard/handlers"
	"partyboard/middleware"
	"partyboard/session"
)

// SetupRoutes lays out the client page surface: public scoreboard pages,
// the admin dashboard behind the session gate, and the viewer socket.
func SetupRoutes(
	router *chi.Mux,
	store *session.Store,
	homeHandler *handlers.HomeHandler,
	authHandler *handlers.AuthHandler,
	dashboardHandler *handlers.DashboardHandler,
	wizardHandler *handlers.WizardHandler,
	gameHandler *handlers.GameHandler,
	consoleHandler *handlers.ConsoleHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Public pages
	router.Get("/", homeHandler.Index)
	router.Post("/code", homeHandler.LookupCode)
	router.Get("/games/{gameID}", gameHandler.Get)
	router.Get("/games/{gameID}/leaderboard", gameHandler.Leaderboard)
	router.Get("/leaderboard", leaderboardHandler.Leaderboard)
	router.Get("/scoreboard", leaderboardHandler.Scoreboard)
	router.Post("/scoreboard/teams/{teamID}/toggle", leaderboardHandler.ToggleTeam)
	router.Get("/connection", leaderboardHandler.Connection)
	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)

	// Auth
	router.Post("/auth/login", authHandler.Login)
	router.Post("/auth/logout", authHandler.Logout)
	router.Get("/auth/verify", authHandler.Verify)

	// Admin surface
	router.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireSession(store))

		r.Get("/dashboard", dashboardHandler.Overview)
		r.Post("/games", dashboardHandler.CreateGame)
		r.Delete("/games/{gameID}", dashboardHandler.DeleteGame)
		r.Put("/tournaments/{tournamentID}/status", dashboardHandler.ToggleStatus)

		r.Post("/wizards", wizardHandler.Start)
		r.Route("/wizards/{wizardID}", func(r chi.Router) {
			r.Get("/", wizardHandler.State)
			r.Put("/", wizardHandler.Update)
			r.Post("/next", wizardHandler.Next)
			r.Post("/back", wizardHandler.Back)
			r.Post("/submit", wizardHandler.Submit)
		})
	})

	// Scoring console (game masters)
	router.Route("/console/{tournamentID}", func(r chi.Router) {
		r.Use(middleware.RequireSession(store))
		r.Get("/", consoleHandler.State)
		r.Post("/scores", consoleHandler.SubmitScore)
	})

	// Everything else is the 404 page.
	router.NotFound(handlers.NotFound)
}
