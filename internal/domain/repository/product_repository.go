package repository

import (
	"context"

	"mfgmarket/internal/domain/entity"
)

type ProductFilter struct {
	SellerID string
	Status   string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, int64, error)
	IncrementViews(ctx context.Context, id string) error
	AddImage(ctx context.Context, image *entity.ProductImage) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	List(ctx context.Context) ([]*entity.Category, error)
}
