package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recettes/backend/config"
	"github.com/pageza/recettes/backend/internal/database"
	"github.com/pageza/recettes/backend/internal/logging"
	"github.com/pageza/recettes/backend/internal/model"
)

func main() {
	cmd := &cli.Command{
		Name:  "migrate",
		Usage: "Create or drop the recipe catalog tables",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "rollback",
				Usage: "Drop the recipes and categories tables instead of creating them",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the tables that would be touched without changing anything",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
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
	db = db.WithContext(ctx)

	tables := []string{"categories", "recipes"}
	if cmd.Bool("dry-run") {
		action := "create"
		if cmd.Bool("rollback") {
			action = "drop"
		}
		fmt.Printf("would %s tables %v on %s\n", action, tables, db.Dialector.Name())
		return nil
	}

	if cmd.Bool("rollback") {
		return rollback(db, logger)
	}
	if err := database.EnsureSchema(db, logger); err != nil {
		return err
	}
	logger.Info("schema is up to date", zap.Strings("tables", tables))
	return nil
}

// rollback drops recipes before categories because of the foreign key.
func rollback(db *gorm.DB, logger *zap.Logger) error {
	if err := db.Migrator().DropTable(&model.Recipe{}, &model.Category{}); err != nil {
		return fmt.Errorf("failed to drop catalog tables: %w", err)
	}
	logger.Info("dropped catalog tables")
	return nil
}
