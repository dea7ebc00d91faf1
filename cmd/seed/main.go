package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"menu-service/internal/config"
	"menu-service/internal/database"
	"menu-service/internal/repository"
	"menu-service/internal/seed"
	"menu-service/internal/service"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "menu-seed",
		Usage: "Bulk-load menu items from a name list (local file or S3)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "path of the name list, one item per line (.gz is decompressed)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "load and report the names without inserting them",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd.String("file"), cmd.Bool("dry-run"))
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string, dryRun bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, cfg.Env).With().Str("command", "seed").Logger()

	names, err := newLoader(ctx, cfg.Seed, logger).Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	if dryRun {
		logger.Info().Int("names", len(names)).Msg("dry run, nothing inserted")
		return nil
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, cfg.Database, logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	menuService := service.NewMenuService(repository.NewMenuItemRepository(pool, logger), logger)

	res, err := seed.NewSeeder(menuService, logger).Run(ctx, names)
	if err != nil {
		return fmt.Errorf("seeding stopped after %d items: %w", res.Created, err)
	}

	fmt.Printf("created %d, skipped %d\n", res.Created, res.Skipped)
	return nil
}

func newLoader(ctx context.Context, cfg config.SeedConfig, logger zerolog.Logger) seed.Loader {
	fileLoader := seed.NewFileLoader(logger)
	if !cfg.S3Enabled {
		return fileLoader
	}

	s3Loader, err := seed.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3Prefix, true, logger)
}
