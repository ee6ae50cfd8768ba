package main

import (
	"embed"
	"log/slog"
	"os"

	"github.com/ghuser/communityhub/pkg/config"
	"github.com/ghuser/communityhub/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	applied, err := migrator.RunMigrations(cfg.DefinitionDatabaseURL, MigrationsFS)
	if err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied", "service", "resource", "applied", applied)
}
