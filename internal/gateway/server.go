// ============================================================================
// RAQL - Relational Algebra Query Language tools
// ============================================================================
//
// Package:     gateway
// Description: HTTP server exposing the recognizer over REST and WebSocket
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package gateway

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/msto63/raql/foundation/core/config"
	mdwerror "github.com/msto63/raql/foundation/core/error"
	"github.com/msto63/raql/foundation/raql"
	"github.com/msto63/raql/foundation/raql/parser"
	"github.com/msto63/raql/pkg/core/health"
	"github.com/msto63/raql/pkg/core/logging"
	"github.com/msto63/raql/pkg/core/version"
)

// Server is the recognition gateway
type Server struct {
	httpServer *http.Server
	health     *health.Registry
	logger     *logging.Logger
	config     Config
}

// Config holds server configuration
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Options every request starts from
	Options raql.Options

	// Logger (optional)
	Logger *logging.Logger
}

// ConfigFromSettings builds the server configuration from loaded settings
func ConfigFromSettings(settings *config.Settings) Config {
	if settings == nil {
		settings = config.Default()
	}
	return Config{
		Host:         settings.Gateway.Host,
		Port:         settings.Gateway.Port,
		ReadTimeout:  settings.Gateway.ReadTimeout,
		WriteTimeout: 2 * settings.Gateway.ReadTimeout,
		Options:      raql.OptionsFromSettings(settings),
	}
}

// New creates a new gateway server
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New(logging.DefaultLoggerConfig("raql-gateway"))
	}
	if cfg.Options.Logger == nil {
		cfg.Options.Logger = logger.Logger
	}

	healthRegistry := health.NewRegistry("raql-gateway", version.Gateway)
	healthRegistry.Register(health.AlwaysHealthy("http"))
	healthRegistry.Register(health.FromFunc("recognizer", recognizerCheck(cfg.Options)))

	mux := http.NewServeMux()
	mux.Handle("/v1/ws", NewWebSocketHandler(cfg.Options, logger))
	mux.Handle("/", NewHandler(cfg.Options, logger, healthRegistry))

	httpServer := &http.Server{
		Addr:         config.GatewaySettings{Host: cfg.Host, Port: cfg.Port}.Address(),
		Handler:      loggingMiddleware(logger, mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		httpServer: httpServer,
		health:     healthRegistry,
		logger:     logger,
		config:     cfg,
	}
}

// healthStatement must always be accepted
const healthStatement = "EXIT;"

// recognizerCheck checks that an engine built from base accepts a known
// statement
func recognizerCheck(base raql.Options) func(ctx context.Context) error {
	opts := base
	opts.Verbosity = parser.VerbositySilent
	opts.Pause = nil
	opts.Dispatcher = nil
	return func(ctx context.Context) error {
		engine, err := raql.New(opts)
		if err != nil {
			return err
		}
		res := engine.RecognizeStatement(ctx, healthStatement)
		if !res.Accepted {
			return mdwerror.Newf("health statement %q rejected: %s", healthStatement, res.Message).
				WithCode(mdwerror.CodeInternal).
				WithOperation("gateway.recognizerCheck")
		}
		return nil
	}
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"duration", time.Since(start),
		)
	})
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Hijack implements http.Hijacker for the WebSocket upgrade
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.statusCode = http.StatusSwitchingProtocols
	return hijacker.Hijack()
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("Starting RAQL gateway", "address", s.Address())
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping RAQL gateway")
	return s.httpServer.Shutdown(ctx)
}

// Address returns the server address
func (s *Server) Address() string {
	return s.httpServer.Addr
}
