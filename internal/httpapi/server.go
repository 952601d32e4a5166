package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	apimw "github.com/alertwatch/alertwatch/internal/httpapi/middleware"
	"github.com/alertwatch/alertwatch/internal/repo"
)

type Server struct {
	Logger *zap.Logger
	Alerts repo.AlertStore
}

func NewServer(l *zap.Logger, store repo.AlertStore) *Server {
	return &Server{Logger: l, Alerts: store}
}

// Router wires the alert CRUD surface. An empty origins list allows all
// (handy for local dev); rpm <= 0 disables rate limiting.
func (s *Server) Router(origins []string, rpm, burst int) http.Handler {
	r := chi.NewRouter()

	if len(origins) == 0 {
		r.Use(cors.AllowAll().Handler)
	} else {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowedHeaders: []string{"Content-Type"},
		}))
	}
	r.Use(apimw.RateLimit(rpm, burst))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/alerts", s.handleListAlerts)
	r.Post("/api/alerts", s.handleCreateAlert)
	r.Get("/api/alerts/{id}", s.handleGetAlert)
	r.Put("/api/alerts/{id}", s.handleUpdateAlert(false))
	r.Patch("/api/alerts/{id}", s.handleUpdateAlert(true))
	r.Delete("/api/alerts/{id}", s.handleDeleteAlert)

	return r
}
