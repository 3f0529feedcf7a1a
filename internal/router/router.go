package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/vinquiz/internal/auth"
	"github.com/saulo-duarte/vinquiz/internal/catalog"
	"github.com/saulo-duarte/vinquiz/internal/game"
	"github.com/saulo-duarte/vinquiz/internal/health"
	"github.com/saulo-duarte/vinquiz/internal/middlewares"
	"github.com/saulo-duarte/vinquiz/internal/social"
	"github.com/saulo-duarte/vinquiz/internal/user"
)

type RouterConfig struct {
	UserHandler    *user.Handler
	AuthHandler    *auth.Handler
	CatalogHandler *catalog.Handler
	GameHandler    *game.Handler
	SocialHandler  *social.Handler
	HealthHandler  *health.Handler

	CorsAllowedOrigins []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CorsAllowedOrigins))

	r.Get("/healthz", cfg.HealthHandler.Check)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/games", game.Routes(cfg.GameHandler))
		r.Mount("/catalog", catalog.Routes(cfg.CatalogHandler))
		r.Mount("/posts", social.Routes(cfg.SocialHandler))
	})
	return r
}
