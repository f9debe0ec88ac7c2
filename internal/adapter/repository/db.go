package repository

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"mfgmarket/internal/domain/entity"
)

// OpenPostgres connects to the relational store. TranslateError is on so
// unique-constraint violations surface as gorm.ErrDuplicatedKey across
// drivers; the conversation create path depends on that.
func OpenPostgres(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.Product{},
		&entity.ProductImage{},
		&entity.Conversation{},
		&entity.Message{},
	)
}
