package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recettes/backend/internal/model"
)

// EnsureSchema creates the catalog tables when they are missing. It only
// adds; it never alters or drops existing columns.
func EnsureSchema(db *gorm.DB, log *zap.Logger) error {
	log.Info("ensuring catalog schema", zap.String("dialect", db.Dialector.Name()))
	if err := db.AutoMigrate(&model.Category{}, &model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}
