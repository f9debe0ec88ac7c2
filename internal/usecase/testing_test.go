package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	gormrepo "mfgmarket/internal/adapter/repository"
	"mfgmarket/internal/domain/entity"
	"mfgmarket/internal/domain/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormrepo.Migrate(db))

	return db
}

func seedUser(t *testing.T, repo repository.UserRepository, email, phone, gstNumber string) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        email,
		Phone:        phone,
		GSTNumber:    gstNumber,
		PasswordHash: "x",
		CompanyName:  "Test Traders",
		UserType:     entity.UserTypeBoth,
		IsActive:     true,
		IsVerified:   true,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func seedProduct(t *testing.T, repo repository.ProductRepository, sellerID string) *entity.Product {
	t.Helper()

	product := &entity.Product{
		SellerID: sellerID,
		Title:    "Surplus steel coils",
		Quantity: 12,
		Unit:     "tonne",
		Price:    45000,
		Status:   entity.ProductStatusActive,
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}
