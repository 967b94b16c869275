package routes

import (
	"github.com/aidosk/courtscore/handlers"
	"github.com/aidosk/courtscore/middleware"
	"github.com/aidosk/courtscore/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	matchUpHandler *handlers.MatchUpHandler,
	scoreHandler *handlers.ScoreHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(jwtSecret)

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", tournamentHandler.List)
		r.Get("/{id}", tournamentHandler.Get)
		r.Get("/{tournamentID}/matchups", matchUpHandler.ListByTournament)

		// Mutations require an organizer.
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.Authorize(models.RoleOrganizer))

			r.Post("/", tournamentHandler.Create)
			r.Delete("/{id}", tournamentHandler.Delete)
			r.Post("/{tournamentID}/matchups", matchUpHandler.Create)
			r.Post("/{id}/export", tournamentHandler.Export)
		})
	})

	router.Route("/matchups", func(r chi.Router) {
		r.Get("/{id}", matchUpHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.Authorize(models.RoleScorekeeper, models.RoleOrganizer))

			r.Post("/{id}/tokens", scoreHandler.ApplyToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.Authorize(models.RoleOrganizer))

			r.Delete("/{id}", matchUpHandler.Delete)
		})
	})

	router.Get("/ws/matchups/{id}", webSocketHandler.ServeWs)
}
