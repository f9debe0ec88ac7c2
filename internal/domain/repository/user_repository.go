package repository

import (
	"context"

	"mfgmarket/internal/domain/entity"
)

type UserFilter struct {
	Verified *bool
	Active   *bool
	Search   string
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)
	GetByGSTNumber(ctx context.Context, gstNumber string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, filter UserFilter, limit, offset int) ([]*entity.User, int64, error)
}
