package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gormrepo "mfgmarket/internal/adapter/repository"
	"mfgmarket/internal/domain/entity"
	"mfgmarket/pkg/errors"
)

func newProductFixture(t *testing.T) (*ProductUseCase, *entity.User, *entity.Product) {
	t.Helper()

	db := newTestDB(t)
	userRepo := gormrepo.NewGormUserRepository(db)
	productRepo := gormrepo.NewGormProductRepository(db)
	categoryRepo := gormrepo.NewGormCategoryRepository(db)

	seller := seedUser(t, userRepo, "seller@x.com", "9876543210", "27ABCDE1234F1Z5")
	product := seedProduct(t, productRepo, seller.ID)

	return NewProductUseCase(productRepo, categoryRepo, nil), seller, product
}

func TestGetByIDSkipsOwnerViews(t *testing.T) {
	uc, seller, product := newProductFixture(t)
	ctx := context.Background()

	// Owner views never count.
	got, err := uc.GetByID(ctx, product.ID, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ViewsCount)

	// Anonymous and third-party views do.
	got, err = uc.GetByID(ctx, product.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewsCount)

	got, err = uc.GetByID(ctx, product.ID, "someone-else")
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewsCount)
}

func TestUpdateRejectsNonOwnerWithNotFound(t *testing.T) {
	uc, _, product := newProductFixture(t)

	title := "hijacked"
	_, err := uc.Update(context.Background(), product.ID, "not-the-seller", UpdateProductInput{Title: &title})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	unchanged, err := uc.GetByID(context.Background(), product.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "Surplus steel coils", unchanged.Title)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	uc, seller, product := newProductFixture(t)

	price := 39000.0
	updated, err := uc.Update(context.Background(), product.ID, seller.ID, UpdateProductInput{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 39000.0, updated.Price)
	assert.Equal(t, "Surplus steel coils", updated.Title)
	assert.Equal(t, 12.0, updated.Quantity)
}

func TestDeleteRetiresListing(t *testing.T) {
	uc, seller, product := newProductFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, product.ID, seller.ID))

	retired, err := uc.GetByID(ctx, product.ID, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusInactive, retired.Status)
	assert.False(t, retired.IsActive)

	// Retired listings drop out of the public list.
	listed, total, err := uc.List(ctx, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.Zero(t, total)
}

func TestDeleteRejectsNonOwner(t *testing.T) {
	uc, _, product := newProductFixture(t)

	err := uc.Delete(context.Background(), product.ID, "not-the-seller")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
