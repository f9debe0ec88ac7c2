package usecase

import (
	"context"

	"mfgmarket/internal/domain/entity"
	"mfgmarket/internal/domain/repository"
	"mfgmarket/pkg/errors"
	"mfgmarket/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// UpdateProfileInput is the full set of self-service editable fields. Nil
// means "leave unchanged". Email, phone and GST number are deliberately
// absent: identity fields are immutable after registration.
type UpdateProfileInput struct {
	CompanyName     *string
	ContactPerson   *string
	BusinessLicense *string
	Address         *string
	City            *string
	State           *string
	Pincode         *string
	UserType        *string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, errors.NotFound("User", err)
	}

	if input.CompanyName != nil {
		user.CompanyName = *input.CompanyName
	}
	if input.ContactPerson != nil {
		user.ContactPerson = *input.ContactPerson
	}
	if input.BusinessLicense != nil {
		user.BusinessLicense = *input.BusinessLicense
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.State != nil {
		user.State = *input.State
	}
	if input.Pincode != nil {
		user.Pincode = *input.Pincode
	}
	if input.UserType != nil {
		user.UserType = *input.UserType
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Error("Profile update error: %v", err)
		return nil, errors.Internal("Failed to update profile", err)
	}

	logger.Info("User profile updated: %s", user.ID)
	return user, nil
}

// PublicProfile is the subset of a user visible to anyone.
type PublicProfile struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	UserType    string `json:"user_type"`
	IsVerified  bool   `json:"is_verified"`
}

func (uc *UserUseCase) GetPublicProfile(ctx context.Context, userID string) (*PublicProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, errors.NotFound("User", err)
	}

	return &PublicProfile{
		ID:          user.ID,
		CompanyName: user.CompanyName,
		City:        user.City,
		State:       user.State,
		UserType:    user.UserType,
		IsVerified:  user.IsVerified,
	}, nil
}
