package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/irdecode/internal/auth"
	"github.com/danmuck/irdecode/internal/config"
	"github.com/danmuck/irdecode/internal/observability"
	"github.com/danmuck/irdecode/internal/protocol/frame"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const Version = "0.1.0"

// Server exposes the decoder over HTTP.
type Server struct {
	name      string
	addr      string
	limits    frame.Limits
	validator auth.Validator
	logger    zerolog.Logger
	router    *gin.Engine
	started   time.Time
}

func New(cfg config.ServiceConfig, logger zerolog.Logger) *Server {
	s := &Server{
		name:      cfg.Name,
		addr:      cfg.Addr,
		limits:    cfg.Limits(),
		validator: auth.ForToken(cfg.AuthToken),
		logger:    logger,
		router:    gin.New(),
		started:   time.Now(),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(observability.RequestID())
	s.router.Use(observability.RequestLogger(logger))
	s.router.Use(observability.RequestMetricsMiddleware(cfg.Name))
	if len(cfg.CorsOrigins) > 0 {
		s.router.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CorsOrigins,
			AllowMethods:  []string{"GET", "POST"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", observability.RequestIDHeader},
			ExposeHeaders: []string{observability.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}
	s.RegisterRoutes()
	return s
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr).Str("service", s.name).Msg("listening")
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
		s.logger.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
