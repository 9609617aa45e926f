package database

import (
	"fmt"

	"gorm.io/gorm"

	"quiz-embed/internal/models"
)

// InitSchema creates the four tables and adds any column or cascade
// constraint missing from an older deployment. Structures that already
// exist are left alone, so it is safe on every start.
func InitSchema(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Quiz{},
		&models.Question{},
		&models.Choice{},
		&models.Response{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
