// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/relgraph/pipeline"
	"github.com/katalvlaran/relgraph/render"
)

// MaxBody bounds the accepted table size.
const MaxBody = "1M"

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// Server serves renders of posted tables.
type Server struct {
	echo       *echo.Echo
	runner     *pipeline.Runner
	variations []render.Variation
	presets    func(entities []string) []render.Variation
	recognized []string
	log        zerolog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger logs every request and render failure on l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.log = l.With().Str("component", "server").Logger() }
}

// WithRecognized sets the default entity filter applied when a request
// carries no entities parameter.
func WithRecognized(names ...string) Option {
	return func(s *Server) { s.recognized = append([]string(nil), names...) }
}

// WithPresets derives the variations of each request from the entities of
// the posted table, e.g. config.DefaultVariations so that the built-in
// presets pin an entity that the table actually has. The variations given to
// New still name what /v1/variations lists and what a request may select.
func WithPresets(fn func(entities []string) []render.Variation) Option {
	return func(s *Server) { s.presets = fn }
}

// New builds a Server rendering with runner under variations.
// Panics if runner is nil or variations is empty.
func New(runner *pipeline.Runner, variations []render.Variation, opts ...Option) *Server {
	if runner == nil {
		panic("server: nil runner")
	}
	if len(variations) == 0 {
		panic("server: no variations")
	}
	s := &Server{
		runner:     runner,
		variations: append([]render.Variation(nil), variations...),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(MaxBody))

	s.echo = e
	s.routes()

	return s
}

func (s *Server) routes() {
	s.echo.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	v1 := s.echo.Group("/v1")
	v1.GET("/variations", s.listVariations)
	v1.POST("/render", s.render)
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler { return s.echo }

// Start listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdown); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}
