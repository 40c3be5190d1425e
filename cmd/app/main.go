package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/jsisencao/portal-juridico/config"
	_ "github.com/jsisencao/portal-juridico/docs"
	"github.com/jsisencao/portal-juridico/internal/app"
	"github.com/jsisencao/portal-juridico/internal/db"
)

var (
	flConfig        = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug         = flag.Bool("debug", false, "enable debug mode")
	flMigrate       = flag.Bool("migrate", false, "apply pending database migrations before serving")
	flMigrationsDir = flag.String("migrations-dir", "migrations", "directory with goose migrations")
	cfg             config.Config
	lg              *slog.Logger
)

// @title Portal Jurídico API
// @version 1.0
// @description Legal news portal for Angola: public reads, admin back office and JSON-RPC
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	ctx := context.Background()

	if *flMigrate {
		if err := db.MigrateUp(ctx, databaseDSN(&cfg.Database), *flMigrationsDir); err != nil {
			exitOnError(err)
		}
		lg.Info("database migrations applied")
	}

	dbConnect := pg.Connect(&cfg.Database)
	if err := dbConnect.Ping(ctx); err != nil {
		dbConnect.Close()
		exitOnError(err)
	}

	service, err := app.New(ctx, &cfg, dbConnect, lg)
	if err != nil {
		dbConnect.Close()
		exitOnError(err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func databaseDSN(opts *pg.Options) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(opts.User, opts.Password),
		Host:     opts.Addr,
		Path:     "/" + opts.Database,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
