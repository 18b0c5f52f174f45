package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/linkhive/apiserver/config"
	"github.com/linkhive/apiserver/internal/db"
	"github.com/linkhive/apiserver/internal/handlers"
	"github.com/linkhive/apiserver/internal/services"
	"github.com/linkhive/apiserver/internal/store"
	"github.com/rs/zerolog/log"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sqlx.DB
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		_ = dbConn.Close()
		return nil, errors.New("JWT_SECRET is required")
	}

	userRepo := store.NewUserRepository()
	profileRepo := store.NewProfileRepository()
	linkRepo := store.NewLinkRepository()

	userService := services.NewUserService(dbConn, userRepo)
	customizationService := services.NewCustomizationService(
		dbConn,
		dbConn,
		userRepo,
		profileRepo,
		linkRepo,
		store.BeginTx,
		store.CommitTx,
		store.RollbackTx,
	)
	publicService := services.NewPublicService(dbConn, userRepo, profileRepo, linkRepo)

	authMiddleware := handlers.RequireAuth(cfg.JWTSecret)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, cfg.JWTSecret, cfg.JWTTTL)
	})
	router.Route("/customization", func(r chi.Router) {
		handlers.CustomizationRouter(r, customizationService, authMiddleware, cfg.IsDevelopment())
	})
	router.Route("/public", func(r chi.Router) {
		handlers.PublicProfileRouter(r, publicService)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Int("port", port).Msg("server configured")

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
