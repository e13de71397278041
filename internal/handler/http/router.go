package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(opts RouterOptions, employeeHandler EmployeeHandler, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()

	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(chiMiddleware.RequestID)

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Get("/employees", employeeHandler.List)

	r.Route("/employee", func(r chi.Router) {
		r.Post("/", employeeHandler.Create)
		r.Get("/{id}", employeeHandler.Get)
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", attendanceHandler.List)
		r.Post("/checkin", attendanceHandler.CheckIn)
		r.Post("/checkout", attendanceHandler.CheckOut)
		r.Get("/{id}/events", attendanceHandler.Stream)
		r.Get("/{id}/{date}", attendanceHandler.Get)
	})

	return r
}
