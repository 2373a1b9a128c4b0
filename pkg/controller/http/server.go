package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/briareus/pkg/usecase"
	"github.com/secmon-lab/briareus/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(actorMiddleware)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/incidents", func(r chi.Router) {
			r.Get("/", s.listIncidents)
			r.Post("/", s.createIncident)
			r.Get("/active", s.listActiveIncidents)
			r.Get("/{id}", s.getIncident)
			r.Put("/{id}", s.updateIncident)
			r.Delete("/{id}", s.deleteIncident)
			r.Put("/{id}/status", s.updateIncidentStatus)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.listTasks)
			r.Post("/", s.createTask)
			r.Get("/incident/{incidentID}", s.listTasksByIncident)
			r.Get("/user/{userID}", s.listTasksByAssignee)
			r.Get("/{id}", s.getTask)
			r.Put("/{id}", s.updateTask)
			r.Delete("/{id}", s.deleteTask)
			r.Post("/{id}/notes", s.addTaskNote)
		})

		r.Route("/evidence", func(r chi.Router) {
			r.Get("/", s.listEvidence)
			r.Post("/", s.createEvidence)
			r.Get("/incident/{incidentID}", s.listEvidenceByIncident)
			r.Get("/{id}", s.getEvidence)
			r.Put("/{id}", s.updateEvidence)
			r.Delete("/{id}", s.deleteEvidence)
			r.Post("/{id}/custody", s.addCustodyEntry)
		})

		r.Route("/timeline", func(r chi.Router) {
			r.Get("/", s.listTimelineEvents)
			r.Post("/", s.createTimelineEvent)
			r.Get("/incident/{incidentID}", s.listTimelineEventsByIncident)
			r.Get("/category/{category}", s.listTimelineEventsByCategory)
			r.Get("/{id}", s.getTimelineEvent)
			r.Put("/{id}", s.updateTimelineEvent)
			r.Delete("/{id}", s.deleteTimelineEvent)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.listUsers)
			r.Put("/{id}", s.putUser)
			r.Get("/{id}", s.getUser)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
