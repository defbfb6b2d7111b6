// Package server wires configuration, data, services and handlers into the
// HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/workforce/config"
	"github.com/ncobase/workforce/data"
	"github.com/ncobase/workforce/handler"
	"github.com/ncobase/workforce/logging/logger"
	"github.com/ncobase/workforce/middleware"
	"github.com/ncobase/workforce/net/resp"
	"github.com/ncobase/workforce/security/jwt"
	"github.com/ncobase/workforce/service"
)

// Server holds the running application.
type Server struct {
	config  *config.Config
	logger  *logger.Logger
	data    *data.Data
	handler *handler.Handler
	engine  *gin.Engine
	http    *http.Server
}

// NewServer connects the data layer and builds the handler tree.
func NewServer(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Server, func(), error) {
	if cfg == nil {
		return nil, nil, errors.New("config is nil")
	}
	if log == nil {
		return nil, nil, errors.New("logger is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	d, cleanup, err := data.New(ctx, cfg.Data.MongoDB, log)
	if err != nil {
		return nil, nil, err
	}

	if err := d.EnsureIndexes(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	tokens := jwt.NewTokenManager(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpireDuration())
	svc := service.NewService(d, tokens, log)

	s := &Server{
		config:  cfg,
		logger:  log,
		data:    d,
		handler: handler.NewHandler(svc, d, log),
	}
	return s, cleanup, nil
}

// SetupRouter builds the gin engine.
func (s *Server) SetupRouter() *gin.Engine {
	gin.SetMode(ginMode(s.config.Environment))
	s.engine = NewRouter(s.handler, s.logger)
	return s.engine
}

// NewRouter returns an engine with the shared middleware and every route of h.
func NewRouter(h *handler.Handler, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Trace(), middleware.Recovery(log), middleware.Logger(log))

	h.RegisterRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotFound(http.StatusText(http.StatusNotFound)))
	})
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotAllowed(http.StatusText(http.StatusMethodNotAllowed)))
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if s.engine == nil {
		s.SetupRouter()
	}

	addr := s.config.Addr()
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(context.Background(), "Starting server", "addr", addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.logger.Error(shutdownCtx, "Server forced to shutdown", "error", err)
		return err
	}

	s.logger.Info(context.Background(), "Server exited")
	return nil
}

func ginMode(environment string) string {
	switch environment {
	case gin.DebugMode, "development", "dev":
		return gin.DebugMode
	case gin.TestMode:
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
