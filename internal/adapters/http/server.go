package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/OliveiraNt/kafka-utils/internal/application"
	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/OliveiraNt/kafka-utils/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server provides the HTTP JSON API over the cluster services.
type Server struct {
	clusterService *application.ClusterService
	topicService   *application.TopicService
	groupService   *application.ConsumerGroupsService
}

// New creates a new HTTP server instance.
func New(clusterService *application.ClusterService, topicService *application.TopicService, groupService *application.ConsumerGroupsService) *Server {
	return &Server{
		clusterService: clusterService,
		topicService:   topicService,
		groupService:   groupService,
	}
}

// Router builds the chi router with every route and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			dur := time.Since(start)
			utils.Logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", dur.String(),
			)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/brokers", s.apiListBrokers)

		r.Get("/topics", s.apiListTopics)
		r.Get("/topics/names", s.apiListTopicNames)
		r.Delete("/topics", s.apiDeleteTopics)

		r.Get("/consumer-groups", s.apiListConsumerGroups)
		r.Delete("/consumer-groups", s.apiDeleteConsumerGroups)
	})
	return r
}

// Run starts the HTTP server on the given address and shuts it down when ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Logger.Info("HTTP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		utils.Logger.Info("HTTP server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// deleteResult is the wire form of one delete outcome.
type deleteResult struct {
	Name  string `json:"name"`
	Error string `json:"error,omitempty"`
}

func toDeleteResults(results domain.DeleteResults) []deleteResult {
	out := make([]deleteResult, 0, len(results))
	for _, r := range results {
		dr := deleteResult{Name: r.Name}
		if r.Err != nil {
			dr.Error = r.Err.Error()
		}
		out = append(out, dr)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.Logger.Error("encode response failed", "err", err)
	}
}

// writeError maps gateway failures to 502 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrConnection) || errors.Is(err, domain.ErrFetch) {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
