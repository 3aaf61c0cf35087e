// Package server provides the generic gin API server both services run on.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kiosk404/stockmind/internal/pkg/middleware"
	genericoptions "github.com/kiosk404/stockmind/internal/pkg/options"
)

// GenericAPIServer wraps a gin engine with lifecycle management.
type GenericAPIServer struct {
	Engine *gin.Engine

	addr string
	log  *logrus.Logger
	srv  *http.Server
}

// New builds a server with the standard middleware chain installed.
func New(opts *genericoptions.ServingOptions, log *logrus.Logger) *GenericAPIServer {
	gin.SetMode(opts.Mode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS())
	engine.Use(middleware.RequestLogger(log))

	if opts.EnableProfiling {
		pprof.Register(engine)
	}

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &GenericAPIServer{
		Engine: engine,
		addr:   opts.Addr(),
		log:    log,
	}
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *GenericAPIServer) Run(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:    s.addr,
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.addr).Info("http server listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutdown signal received")
		return s.Close()
	}
}

// Close stops the server, allowing in-flight requests a short drain window.
func (s *GenericAPIServer) Close() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
