package usecase

import (
	"context"
	"io"

	"mfgmarket/internal/domain/entity"
	"mfgmarket/internal/domain/repository"
	"mfgmarket/internal/infrastructure/storage"
	"mfgmarket/pkg/errors"
	"mfgmarket/pkg/logger"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	images       *storage.ImageStorage
}

func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, images *storage.ImageStorage) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		images:       images,
	}
}

type CreateProductInput struct {
	CategoryID      string
	Title           string
	Description     string
	Material        string
	Quantity        float64
	Unit            string
	Price           float64
	PriceNegotiable bool
	Condition       string
	LocationCity    string
	LocationState   string
}

// UpdateProductInput mirrors UpdateProfileInput: explicit optional fields,
// nothing assignable by name.
type UpdateProductInput struct {
	Title           *string
	Description     *string
	Quantity        *float64
	Price           *float64
	PriceNegotiable *bool
	Condition       *string
	Status          *string
}

func (uc *ProductUseCase) Create(ctx context.Context, sellerID string, input CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		SellerID:        sellerID,
		CategoryID:      input.CategoryID,
		Title:           input.Title,
		Description:     input.Description,
		Material:        input.Material,
		Quantity:        input.Quantity,
		Unit:            input.Unit,
		Price:           input.Price,
		PriceNegotiable: input.PriceNegotiable,
		Condition:       input.Condition,
		LocationCity:    input.LocationCity,
		LocationState:   input.LocationState,
		Status:          entity.ProductStatusActive,
		IsActive:        true,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		logger.Error("Product creation error: %v", err)
		return nil, errors.Internal("Failed to create product", err)
	}

	logger.Info("Product created: %s", product.ID)
	return product, nil
}

func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	products, total, err := uc.productRepo.List(ctx, repository.ProductFilter{Status: entity.ProductStatusActive}, limit, offset)
	if err != nil {
		logger.Error("Product listing error: %v", err)
		return nil, 0, errors.Internal("Failed to retrieve products", err)
	}
	return products, total, nil
}

// GetByID returns the product and bumps the view counter, unless the
// viewer is the owner. viewerID is empty for anonymous requests.
func (uc *ProductUseCase) GetByID(ctx context.Context, productID, viewerID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || product == nil {
		return nil, errors.NotFound("Product", err)
	}

	if viewerID == "" || viewerID != product.SellerID {
		if err := uc.productRepo.IncrementViews(ctx, productID); err != nil {
			logger.Error("View count increment error for product %s: %v", productID, err)
		} else {
			product.ViewsCount++
		}
	}

	return product, nil
}

func (uc *ProductUseCase) Update(ctx context.Context, productID, sellerID string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || product == nil {
		return nil, errors.NotFound("Product", err)
	}

	if product.SellerID != sellerID {
		// Ownership is not disclosed to non-owners.
		return nil, errors.NotFound("Product", nil)
	}

	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.PriceNegotiable != nil {
		product.PriceNegotiable = *input.PriceNegotiable
	}
	if input.Condition != nil {
		product.Condition = *input.Condition
	}
	if input.Status != nil {
		product.Status = *input.Status
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		logger.Error("Product update error: %v", err)
		return nil, errors.Internal("Failed to update product", err)
	}

	logger.Info("Product updated: %s", product.ID)
	return product, nil
}

// Delete retires a listing. Rows are kept; the product simply stops being
// listed.
func (uc *ProductUseCase) Delete(ctx context.Context, productID, sellerID string) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || product == nil {
		return errors.NotFound("Product", err)
	}

	if product.SellerID != sellerID {
		return errors.NotFound("Product", nil)
	}

	product.Status = entity.ProductStatusInactive
	product.IsActive = false

	if err := uc.productRepo.Update(ctx, product); err != nil {
		logger.Error("Product delete error: %v", err)
		return errors.Internal("Failed to delete product", err)
	}

	logger.Info("Product deactivated: %s", product.ID)
	return nil
}

func (uc *ProductUseCase) UploadImage(ctx context.Context, productID, sellerID, filename string, size int64, file io.Reader) (*entity.ProductImage, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || product == nil {
		return nil, errors.NotFound("Product", err)
	}

	if product.SellerID != sellerID {
		return nil, errors.NotFound("Product", nil)
	}

	stored, err := uc.images.Store(productID, filename, size, file)
	if err != nil {
		return nil, err
	}

	image := &entity.ProductImage{
		ProductID: productID,
		ImageName: stored.Filename,
		IsPrimary: len(product.Images) == 0,
	}

	if err := uc.productRepo.AddImage(ctx, image); err != nil {
		logger.Error("Product image record error: %v", err)
		return nil, errors.Internal("Failed to save image", err)
	}

	return image, nil
}

func (uc *ProductUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("Category listing error: %v", err)
		return nil, errors.Internal("Failed to retrieve categories", err)
	}
	return categories, nil
}
