package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"bookify/cmd/bootstrap"
	"bookify/internal/infra/seed"
	"bookify/internal/pkg/config"

	"go.uber.org/fx"
)

// seedFile overrides SEED_FILE when set on the command line.
type seedFile string

func runSeed(lc fx.Lifecycle, shutdowner fx.Shutdowner, seeder *seed.Seeder, cfg config.Config, logger *slog.Logger, override seedFile) {
	path := string(override)
	if path == "" {
		path = cfg.Seed.File
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			catalogue, err := seed.LoadFile(path)
			if err != nil {
				return err
			}
			res, err := seeder.Run(ctx, catalogue)
			if err != nil {
				return err
			}
			logger.Info("seed finished", "file", path, "room_types", res.RoomTypes, "rooms", res.Rooms)
			return shutdowner.Shutdown()
		},
	})
}

func main() {
	file := flag.String("file", "", "path to the room catalogue (defaults to SEED_FILE)")
	flag.Parse()

	app := fx.New(
		bootstrap.StorageModule,
		fx.Supply(seedFile(*file)),
		fx.Invoke(runSeed),
		fx.NopLogger,
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop seeder", "error", err)
	}
}
