package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/pageza/recettes/backend/config"
	"github.com/pageza/recettes/backend/internal/database"
	"github.com/pageza/recettes/backend/internal/logging"
	"github.com/pageza/recettes/backend/internal/repository"
	"github.com/pageza/recettes/backend/internal/service"
)

func main() {
	cmd := &cli.Command{
		Name:  "seed_recipes",
		Usage: "Insert the sample Moroccan categories and recipes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "Load environment variables from this file before reading configuration",
				Sources: cli.EnvVars("SEED_ENV_FILE"),
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Log what would be inserted without writing",
			},
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "Create missing tables before seeding",
				Value: true,
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String("env-file"); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	db, err := database.New(cfg, logger)
	if err != nil {
		return err
	}
	if cmd.Bool("migrate") && !cmd.Bool("dry-run") {
		if err := database.EnsureSchema(db, logger); err != nil {
			return err
		}
	}

	s := &seeder{
		catalog: service.NewCatalogService(repository.NewCatalogRepository(db), service.StatsDefaults{}),
		recipes: service.NewRecipeService(repository.NewRecipeRepository(db), nil, logger),
		log:     logger,
		dryRun:  cmd.Bool("dry-run"),
	}

	res, err := s.run(ctx, seedCategories, seedRecipes)
	if err != nil {
		return err
	}
	logger.Info("seed complete",
		zap.Int("categories", res.Categories),
		zap.Int("recipes", res.Recipes),
		zap.Int("skipped", res.Skipped),
		zap.Bool("dry_run", s.dryRun),
	)
	return nil
}
