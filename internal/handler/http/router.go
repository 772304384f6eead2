package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/opsboard/kpi-backend-go/internal/config"
	"github.com/opsboard/kpi-backend-go/internal/handler/http/middleware"
	"github.com/opsboard/kpi-backend-go/internal/pkg/jwt"
)

func NewRouter(cfg *config.Config, jwtService jwt.Service, authHandler AuthHandler, rosterHandler RosterHandler, kpiHandler KPIHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "opsboard-kpi"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", rosterHandler.ListTeams)
				r.Post("/", rosterHandler.CreateTeam)

				r.Route("/{teamID}", func(r chi.Router) {
					r.Get("/", rosterHandler.GetTeam)
					r.Get("/summary", kpiHandler.GetSummary)

					r.Route("/employees", func(r chi.Router) {
						r.Get("/", rosterHandler.ListEmployees)
						r.Post("/", rosterHandler.AddEmployee)
						r.Delete("/{matricule}", rosterHandler.RemoveEmployee)
					})

					r.Route("/kpi/{category}", func(r chi.Router) {
						r.Get("/history", kpiHandler.GetHistory)
						r.Put("/{month}", kpiHandler.SaveMonth)
						r.Get("/{month}", kpiHandler.GetMonth)
					})
				})
			})
		})
	})

	return r
}
