package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"bookify/internal/handler/middleware"
	"bookify/internal/pkg/config"
	"bookify/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies migrations/ through the atlas CLI. After editing a migration run
// `atlas migrate hash --dir file://migrations` to refresh atlas.sum.
func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	bin := flag.String("atlas", "atlas", "atlas executable")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := migrate(ctx, logger, cfg.DB, *dir, *bin); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func migrate(ctx context.Context, logger *slog.Logger, db config.DBConfig, dir, bin string) error {
	client, err := atlasexec.NewClient(".", bin)
	if err != nil {
		return errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    db.BuildDSN(),
		DirURL: dir,
	})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	logger.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}
