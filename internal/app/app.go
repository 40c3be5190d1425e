package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/jsisencao/portal-juridico/config"
	"github.com/jsisencao/portal-juridico/internal/admin"
	"github.com/jsisencao/portal-juridico/internal/auth"
	"github.com/jsisencao/portal-juridico/internal/cache"
	"github.com/jsisencao/portal-juridico/internal/db"
	"github.com/jsisencao/portal-juridico/internal/metrics"
	"github.com/jsisencao/portal-juridico/internal/portal"
	"github.com/jsisencao/portal-juridico/internal/rest"
	"github.com/jsisencao/portal-juridico/internal/rpc"
	"github.com/jsisencao/portal-juridico/internal/storage"
)

type App struct {
	DB     *db.Repository
	Auth   *auth.Service
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

// New wires the full service: repository, cache, read model, admin mutations,
// auth, image storage and both delivery surfaces (REST and JSON-RPC).
func New(ctx context.Context, cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	dbConnect.AddQueryHook(db.NewQueryHook(logger))
	repo := db.New(dbConnect)

	store := cache.New(cache.WithObserver(metrics.CacheObserver{}))
	portalService := portal.NewService(portal.NewManager(repo), store)
	adminService := admin.NewService(repo, store, logger)
	authService := auth.NewService(repo, cfg.Auth.JWTSecret, cfg.TokenTTL())

	// image storage is optional: without an endpoint the upload endpoint
	// reports itself unconfigured instead of failing startup
	var images *storage.ImageStore
	if cfg.Storage.Endpoint != "" {
		var err error
		images, err = storage.NewImageStore(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("init image storage: %w", err)
		}
	} else {
		logger.Warn("image storage not configured, uploads disabled")
	}

	handler := rest.NewHandler(portalService, logger)
	adminHandler := rest.NewAdminHandler(adminService, authService, images, logger)
	rpcServer := rpc.New(logger, portalService)

	return &App{
		DB:     repo,
		Auth:   authService,
		Logger: logger,
		Echo:   rest.RegisterRoutes(handler, adminHandler, authService, logger, rpcServer),
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
