// Command createadmin creates a back-office account (or grants the admin role
// to an existing one) so the first operator can sign in.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/jsisencao/portal-juridico/config"
	"github.com/jsisencao/portal-juridico/internal/auth"
	"github.com/jsisencao/portal-juridico/internal/db"
)

var (
	flConfig   = flag.String("config", "config.toml", "path to TOML configuration file")
	flEmail    = flag.String("email", "", "admin account email")
	flPassword = flag.String("password", "", "admin account password")
)

func main() {
	flag.Parse()

	lg := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *flEmail == "" || *flPassword == "" {
		lg.Error("both -email and -password are required")
		os.Exit(1)
	}

	var cfg config.Config
	if _, err := toml.DecodeFile(*flConfig, &cfg); err != nil {
		lg.Error("failed to read configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbConnect := pg.Connect(&cfg.Database)
	defer dbConnect.Close()
	if err := dbConnect.Ping(ctx); err != nil {
		lg.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	authService := auth.NewService(db.New(dbConnect), cfg.Auth.JWTSecret, cfg.TokenTTL())

	user, created, err := authService.EnsureAdmin(ctx, *flEmail, *flPassword)
	if err != nil {
		lg.Error("failed to ensure admin account", "error", err)
		os.Exit(1)
	}

	if created {
		lg.Info("admin account created", "email", user.Email, "id", user.ID)
	} else {
		lg.Info("admin role granted to existing account", "email", user.Email, "id", user.ID)
	}
}
