package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/zano-5702/worktime-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	adminToken string,
	signalHandler SignalHandler,
	sessionHandler SessionHandler,
	aggregateHandler AggregateHandler,
	configHandler ConfigHandler,
	eventHandler EventHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worktime-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

		r.Post("/signals", signalHandler.Ingest)

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", sessionHandler.List)
			r.Put("/{deviceKey}/description", sessionHandler.SetDescription)
		})

		r.Get("/worklog", sessionHandler.WorkLog)
		r.Get("/aggregates/{employeeKey}", aggregateHandler.Get)
		r.Get("/events", eventHandler.Stream)

		r.Route("/config", func(r chi.Router) {
			r.Get("/customers", configHandler.ListCustomers)
			r.Get("/employees", configHandler.ListEmployees)

			// Config writes require the admin token
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminToken(adminToken))
				r.Put("/customers/{key}", configHandler.UpsertCustomer)
				r.Delete("/customers/{key}", configHandler.DeleteCustomer)
				r.Put("/employees/{deviceKey}", configHandler.UpsertEmployee)
				r.Delete("/employees/{deviceKey}", configHandler.DeleteEmployee)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
