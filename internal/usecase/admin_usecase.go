package usecase

import (
	"context"

	"mfgmarket/internal/domain/entity"
	"mfgmarket/internal/domain/repository"
	"mfgmarket/pkg/errors"
	"mfgmarket/pkg/logger"
)

type AdminUseCase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

func NewAdminUseCase(userRepo repository.UserRepository, productRepo repository.ProductRepository) *AdminUseCase {
	return &AdminUseCase{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, int64, error) {
	users, total, err := uc.userRepo.List(ctx, filter, limit, offset)
	if err != nil {
		logger.Error("Admin user list error: %v", err)
		return nil, 0, errors.Internal("Failed to retrieve users", err)
	}
	return users, total, nil
}

func (uc *AdminUseCase) VerifyUser(ctx context.Context, userID string) (*entity.User, error) {
	return uc.setUserFlags(ctx, userID, func(user *entity.User) {
		user.IsVerified = true
	}, "verified")
}

func (uc *AdminUseCase) ActivateUser(ctx context.Context, userID string) (*entity.User, error) {
	return uc.setUserFlags(ctx, userID, func(user *entity.User) {
		user.IsActive = true
	}, "activated")
}

func (uc *AdminUseCase) DeactivateUser(ctx context.Context, userID string) (*entity.User, error) {
	return uc.setUserFlags(ctx, userID, func(user *entity.User) {
		user.IsActive = false
	}, "deactivated")
}

func (uc *AdminUseCase) setUserFlags(ctx context.Context, userID string, mutate func(*entity.User), action string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, errors.NotFound("User", err)
	}

	mutate(user)

	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Error("Admin user %s error: %v", action, err)
		return nil, errors.Internal("Failed to update user", err)
	}

	logger.Info("User %s by admin: %s", action, userID)
	return user, nil
}

func (uc *AdminUseCase) ListProducts(ctx context.Context, status string, limit, offset int) ([]*entity.Product, int64, error) {
	products, total, err := uc.productRepo.List(ctx, repository.ProductFilter{Status: status}, limit, offset)
	if err != nil {
		logger.Error("Admin product list error: %v", err)
		return nil, 0, errors.Internal("Failed to retrieve products", err)
	}
	return products, total, nil
}
