// Package httpd is the network listener collaborator: it owns sockets,
// parsing, and middleware, and forwards every panel request into the
// exact-match dispatch table. Route semantics live in the table, not here.
package httpd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glidelabs/glidectl/internal/observability"
	"github.com/glidelabs/glidectl/internal/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Name        string
	Addr        string
	CorsOrigins []string
}

type Server struct {
	opts   Options
	table  *router.Table
	engine *gin.Engine
	log    zerolog.Logger

	started time.Time
}

func NewServer(opts Options, table *router.Table) *Server {
	observability.RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestID())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(opts.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(opts.CorsOrigins),
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	srv := &Server{
		opts:    opts,
		table:   table,
		engine:  r,
		log:     observability.Component("httpd"),
		started: time.Now(),
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(srv.started).String(),
			"service": opts.Name,
			"version": "0.1.0",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Everything else is panel traffic and belongs to the dispatch table,
	// including the not-found contract for unknown paths.
	r.NoRoute(srv.dispatch)

	return srv
}

// Engine exposes the underlying router for httptest-driven tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}

func (s *Server) dispatch(c *gin.Context) {
	resp := s.table.Dispatch(router.Request{
		Path:       c.Request.URL.Path,
		Query:      c.Request.URL.Query(),
		RemoteAddr: c.Request.RemoteAddr,
	})
	c.Data(resp.Status, resp.ContentType, []byte(resp.Body))
}

// Run serves until ctx is cancelled, then drains with a short grace period.
func (s *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.opts.Addr).Strs("routes", s.table.Paths()).Msg("panel_listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info().Msg("panel_stopped")
	return nil
}
