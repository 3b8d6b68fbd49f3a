package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/lim-bo/songscatalog/internal/api"
	"github.com/lim-bo/songscatalog/internal/config"
	libmanager "github.com/lim-bo/songscatalog/internal/libManager"
)

//	@title			SongsCatalogApi
//	@version		1.0
//	@description	API for artists, albums and songs catalog

// @BasePath	/
func main() {
	cmd := &cli.Command{
		Name:  "songscatalog",
		Usage: "Serve the in-memory artists, albums and songs catalog over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to dotenv configuration file",
				Value: "configs/cfg.env",
			},
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides PORT)",
			},
			&cli.StringFlag{
				Name:  "seeds",
				Usage: "Directory with artists.json, albums.json and songs.json (overrides SEEDS_DIR)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (overrides LOG_LEVEL)",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		return err
	}
	if cmd.IsSet("port") {
		cfg.Port = cmd.String("port")
	}
	if cmd.IsSet("seeds") {
		cfg.SeedsDir = cmd.String("seeds")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := setupLogger(cfg.LogLevel); err != nil {
		return err
	}

	seed, err := loadSeed(ctx, cfg)
	if err != nil {
		return err
	}
	slog.Info("catalog seeded",
		slog.String("source", cfg.SeedSource),
		slog.Int("artists", len(seed.Artists)),
		slog.Int("albums", len(seed.Albums)),
		slog.Int("songs", len(seed.Songs)))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sv := api.New(libmanager.New(seed), api.Options{
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		Swagger:   cfg.Swagger,
	})
	return sv.Run(ctx, cfg.Host, cfg.Port)
}

// setupLogger routes slog through a charmbracelet logger.
func setupLogger(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "catalog",
		Level:           lvl,
	})
	slog.SetDefault(slog.New(logger))
	return nil
}

func loadSeed(ctx context.Context, cfg config.Config) (libmanager.Seed, error) {
	if cfg.SeedSource == config.SeedPostgres {
		return libmanager.LoadSeedFromDB(ctx, cfg.DB)
	}
	return libmanager.LoadSeedFiles(cfg.SeedsDir)
}
