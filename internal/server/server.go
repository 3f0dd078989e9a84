// internal/server/server.go

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nats-io/nats.go"

	"odyssey/internal/config"
	"odyssey/internal/domain/discover"
	"odyssey/internal/domain/geo"
	"odyssey/internal/server/handlers"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server
func NewServer(
	cfg config.ServerConfig,
	natsConn *nats.Conn,
	discoverService discover.Service,
	mapper geo.Mapper,
	trendingSubject string,
) *Server {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Create handler dependencies
	searchHandler := handlers.NewSearchHandler(discoverService)
	discoverHandler := handlers.NewDiscoverHandler(discoverService)
	mapHandler := handlers.NewMapHandler(mapper)

	// Routes
	router.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		// API version
		r.Route("/v1", func(r chi.Router) {
			// Unified search
			r.Get("/search", searchHandler.Search)

			// Map API
			r.Route("/map", func(r chi.Router) {
				r.Get("/locations", mapHandler.GetPostLocations)
			})

			// Discovery API
			r.Route("/discover", func(r chi.Router) {
				r.Get("/trending", discoverHandler.GetTrendingLocations)
				r.Get("/destinations", discoverHandler.GetPopularDestinations)
				r.Get("/places", discoverHandler.GetRecommendedPlaces)
			})
		})
	})

	// WebSocket endpoint for the live trending feed
	router.Get("/ws/discover", handlers.DiscoverWebSocketHandler(natsConn, trendingSubject))

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
