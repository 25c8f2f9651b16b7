package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"ui-server/core/logger"
	"ui-server/core/metrics"
	"ui-server/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Server owns the Fiber application, its route table and the listening socket.
type Server struct {
	app    *fiber.App
	cfg    Config
	logger *zap.Logger
	routes *Routes
}

// New creates a server with middleware installed and an empty route table.
// Nothing is bound until Bind is called.
func New(cfg Config, logg *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "ui-server",
		DisableStartupMessage: true, // We log our own startup message
		StrictRouting:         true,
		CaseSensitive:         true,
		ReadTimeout:           seconds(cfg.ReadTimeoutSeconds),
		WriteTimeout:          seconds(cfg.WriteTimeoutSeconds),
		IdleTimeout:           seconds(cfg.IdleTimeoutSeconds),
		Concurrency:           cfg.Concurrency,
	})

	s := &Server{
		app:    app,
		cfg:    cfg,
		logger: logg,
		routes: NewRoutes(),
	}

	// RayID must be first so every later log line can be correlated.
	app.Use(rayid.New())

	if cfg.Metrics {
		reg := metrics.NewRegistry()
		app.Use(metrics.NewHTTPMetrics(reg).Middleware())
		s.routes.Get(metrics.Path, "metrics", metrics.Handler(reg))
	}

	app.Use(s.logRequest)

	return s
}

// Routes returns the route table. Routes must be registered before Serve.
func (s *Server) Routes() *Routes {
	return s.routes
}

// Config returns the configuration the server was built with.
func (s *Server) Config() Config {
	return s.cfg
}

// Seal applies the route table to the Fiber application.
// Afterwards no more routes can be registered. Calling it again is a no-op.
func (s *Server) Seal() {
	s.routes.seal(s.app)
}

// App returns the Fiber application with the route table applied.
func (s *Server) App() *fiber.App {
	s.Seal()
	return s.app
}

// Bind opens the listening socket on the configured address.
func (s *Server) Bind() (net.Listener, error) {
	addr := s.cfg.Address()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return ln, nil
}

// Serve seals the route table and accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.Seal()
	s.logger.Info("Server listening",
		zap.String("address", ln.Addr().String()),
		zap.Int("routes", len(s.routes.Table())),
	)
	if err := s.app.Listener(ln); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// logRequest writes the access log. Server errors are logged at error level,
// everything else (client errors included) at info.
func (s *Server) logRequest(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	} else if err != nil {
		status = fiber.StatusInternalServerError
	}

	l := logger.WithRayID(s.logger, c)
	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
	}

	if status >= fiber.StatusInternalServerError {
		l.Error("Request failed", append(fields, zap.Error(err))...)
	} else {
		l.Info("Request handled", fields...)
	}
	return err
}
