package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/storecrew/absence-backend-go/internal/config"
	"github.com/storecrew/absence-backend-go/internal/handler/http/middleware"
	"github.com/storecrew/absence-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	storeHandler StoreHandler,
	employeeHandler EmployeeHandler,
	absenceHandler AbsenceHandler,
	requestHandler RequestHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "absence-backend"),
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/stores", func(r chi.Router) {
				r.Get("/", storeHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", storeHandler.Create)
					r.Put("/{id}", storeHandler.Update)
					r.Delete("/{id}", storeHandler.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/absences", func(r chi.Router) {
				r.Get("/", absenceHandler.List)

				// Admin only: direct calendar edits
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", absenceHandler.Toggle)
					r.Delete("/", absenceHandler.Remove)
				})
			})

			r.Route("/summary", func(r chi.Router) {
				r.Get("/", absenceHandler.Summary)
				r.Get("/{employeeID}", absenceHandler.SummaryEmployee)
			})

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", requestHandler.Submit)
				r.Get("/my", requestHandler.ListMine)
				r.Put("/{id}", requestHandler.Edit)
				r.Post("/{id}/cancel", requestHandler.RequestCancel)

				// Admin only: review queue
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", requestHandler.List)
					r.Get("/clashes", requestHandler.Clashes)
					r.Post("/{id}/approve", requestHandler.Approve)
					r.Post("/{id}/reject", requestHandler.Reject)
					r.Post("/{id}/cancel/approve", requestHandler.ApproveCancel)
					r.Post("/{id}/cancel/decline", requestHandler.DeclineCancel)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	return r
}
