package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/PollPeak_Go/internal/adventure"
	"github.com/osse101/PollPeak_Go/internal/awards"
	"github.com/osse101/PollPeak_Go/internal/database"
	"github.com/osse101/PollPeak_Go/internal/domain"
	"github.com/osse101/PollPeak_Go/internal/handler"
	"github.com/osse101/PollPeak_Go/internal/logger"
	"github.com/osse101/PollPeak_Go/internal/metrics"
	"github.com/osse101/PollPeak_Go/internal/votes"
	"github.com/osse101/PollPeak_Go/internal/wrapped"
)

type Server struct {
	httpServer       *http.Server
	dbPool           database.Pool
	wrappedService   wrapped.Service
	awardsService    awards.Service
	adventureService adventure.Service
	votesService     votes.Service
}

// NewServer creates a new Server instance
func NewServer(port int, dbPool database.Pool, wrappedService wrapped.Service, awardsService awards.Service, adventureService adventure.Service, votesService votes.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/wrapped", func(r chi.Router) {
			r.Get("/summary", handler.HandleGetWrappedSummary(wrappedService))
			r.Get("/{person}", handler.HandleGetWrappedDeck(wrappedService))
			r.Get("/{person}/stats", handler.HandleGetWrappedStats(wrappedService))
		})

		r.Route("/awards", func(r chi.Router) {
			r.Get("/", handler.HandleGetAwards(awardsService))
			r.Get("/winners", handler.HandleGetWinners(awardsService))
		})

		r.Route("/adventure", func(r chi.Router) {
			r.Get("/", handler.HandleGetGuide(adventureService))
			r.Get("/people", handler.HandleGetAdventurePeople(adventureService))
			r.Get("/{person}", handler.HandleGetJournal(adventureService))
		})

		r.Route("/predictions", func(r chi.Router) {
			r.Get("/", handler.HandleGetPredictions(adventureService))
			r.Get("/{person}", handler.HandleGetPrediction(adventureService))
		})

		r.Route("/votes", func(r chi.Router) {
			r.Get("/{person}", handler.HandleGetVotes(votesService))
			r.Post("/{person}/up", handler.HandleCastVote(votesService, domain.VoteFieldUp))
			r.Post("/{person}/down", handler.HandleCastVote(votesService, domain.VoteFieldDown))
			r.Delete("/{person}/up", handler.HandleRetractVote(votesService, domain.VoteFieldUp))
			r.Delete("/{person}/down", handler.HandleRetractVote(votesService, domain.VoteFieldDown))
			r.Post("/{person}/switch", handler.HandleSwitchVote(votesService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:           dbPool,
		wrappedService:   wrappedService,
		awardsService:    awardsService,
		adventureService: adventureService,
		votesService:     votesService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", r.Header)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
