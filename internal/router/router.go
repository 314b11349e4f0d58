package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sahyaatra/sahyaatra-api/internal/api/assistant"
	"github.com/sahyaatra/sahyaatra-api/internal/api/auth"
	"github.com/sahyaatra/sahyaatra-api/internal/api/images"
	"github.com/sahyaatra/sahyaatra-api/internal/api/itinerary"
	"github.com/sahyaatra/sahyaatra-api/internal/api/trips"
)

// Config contains the handlers and middleware the router wires together.
type Config struct {
	AuthHandler            *auth.Handler
	ItineraryHandler       *itinerary.Handler
	AssistantHandler       *assistant.Handler
	ImageHandler           *images.Handler
	TripHandler            *trips.Handler
	AuthenticateMiddleware func(http.Handler) http.Handler
}

// SetupRouter builds the /api/v1 route tree. Server-wide middleware
// (request ID, logging, recoverer) is applied by the caller.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes: auth bootstrap, AI assistance and imagery.
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", cfg.AuthHandler.Register)
			r.Post("/auth/login", cfg.AuthHandler.Login)
			r.Post("/auth/refresh", cfg.AuthHandler.Refresh)

			r.Post("/ai/itinerary", cfg.ItineraryHandler.Generate)
			r.Post("/ai/chat", cfg.AssistantHandler.Chat)
			r.Get("/ai/destinations/{destination}", cfg.AssistantHandler.DestinationInfo)
			r.Get("/ai/destinations/{destination}/overview", cfg.AssistantHandler.DestinationOverview)

			r.Get("/images/places/{placeName}", cfg.ImageHandler.PlaceImages)
			r.Get("/images/states/{stateName}", cfg.ImageHandler.StateImages)
			r.Get("/images/categories/{category}", cfg.ImageHandler.CategoryImages)
			r.Get("/images/background", cfg.ImageHandler.BackgroundImages)
			r.Post("/images/cache/clear", cfg.ImageHandler.ClearCache)

			r.Get("/trips", cfg.TripHandler.List)
			r.Get("/trips/{tripID}", cfg.TripHandler.Get)
			r.Get("/trips/{tripID}/budget", cfg.TripHandler.BudgetSummary)
		})

		// Protected routes: everything that writes on behalf of a user.
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)

			r.Post("/trips", cfg.TripHandler.Create)
			r.Post("/trips/{tripID}/join", cfg.TripHandler.Join)
			r.Post("/trips/{tripID}/leave", cfg.TripHandler.Leave)
			r.Get("/trips/{tripID}/messages", cfg.TripHandler.ListMessages)
			r.Post("/trips/{tripID}/messages", cfg.TripHandler.PostMessage)
		})
	})

	return r
}
