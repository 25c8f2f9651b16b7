package cmd

import (
	"context"
	"fmt"
	"time"

	"ui-server/core/config"
	"ui-server/core/loader"
	"ui-server/core/server"
	"ui-server/core/storage"
	"ui-server/feature/api"
	"ui-server/feature/docs"
	"ui-server/feature/integrity"
	"ui-server/feature/static"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// application is the fully wired process: configuration, logger, server and features.
type application struct {
	cfg       *config.Config
	logger    *zap.Logger
	server    *server.Server
	features  *loader.Manager
	integrity *integrity.Service
}

// newApplication builds the server and registers every route. Nothing is bound yet.
func newApplication(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*application, error) {
	var client storage.Client
	if cfg.Static.Source == static.SourceBucket {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}

	user, admin, err := static.NewMounts(ctx, cfg.Static, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	staticFeature := static.NewFeature(user, admin, logg)

	srv := server.New(cfg.App, logg)

	mgr := loader.NewManager(logg)
	mgr.Register(api.NewFeature())
	mgr.Register(staticFeature)
	mgr.Register(docs.NewFeature(cfg.App.Swagger))

	if err := mgr.LoadAll(srv.Routes()); err != nil {
		return nil, err
	}

	return &application{
		cfg:       cfg,
		logger:    logg,
		server:    srv,
		features:  mgr,
		integrity: integrity.NewService(staticFeature.Mounts(), client, cfg.Storage.Bucket, logg),
	}, nil
}

// run drives the server from Configured to Listening and blocks until ctx is
// cancelled. It returns the process exit code: 1 when the socket cannot be
// bound or the server stops unexpectedly, 0 after a clean shutdown.
func (a *application) run(ctx context.Context) int {
	a.integrity.Warn(a.integrity.Check(ctx))

	// Registration ends before the socket exists.
	a.server.Seal()

	a.logger.Info("Starting server",
		zap.String("address", a.cfg.App.Address()),
		zap.Bool("debug", a.cfg.App.DebugEnabled()),
		zap.String("static_source", a.cfg.Static.Source),
	)

	ln, err := a.server.Bind()
	if err != nil {
		a.logger.Error("Server failed to start", zap.Error(err))
		return 1
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error("Server stopped", zap.Error(err))
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Shutdown failed", zap.Error(err))
		return 1
	}
	if err := <-errCh; err != nil {
		a.logger.Error("Server stopped", zap.Error(err))
		return 1
	}
	return 0
}
