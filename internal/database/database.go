package database

import (
	"fmt"

	"github.com/PhotofineColorLab/Sarathi/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the SQLite database at path and migrates the schema
// for the entities that have SQL-backed repositories. Orders stay
// in-memory; their nested items and activity trail are not worth a
// relational mapping for a single-shop dashboard.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.Staff{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
