package usecase

import (
	"context"

	"mfgmarket/internal/domain/entity"
	"mfgmarket/internal/domain/repository"
	"mfgmarket/internal/domain/service"
	"mfgmarket/internal/infrastructure/auth"
	"mfgmarket/pkg/errors"
	"mfgmarket/pkg/logger"
)

type AuthUseCase struct {
	userRepo    repository.UserRepository
	tokens      *auth.TokenService
	gstVerifier service.GSTVerifier
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens *auth.TokenService, gstVerifier service.GSTVerifier) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		tokens:      tokens,
		gstVerifier: gstVerifier,
	}
}

type RegisterInput struct {
	Email           string
	Phone           string
	Password        string
	CompanyName     string
	ContactPerson   string
	GSTNumber       string
	BusinessLicense string
	Address         string
	City            string
	State           string
	Pincode         string
	UserType        string
}

// Register creates a new unverified account. Email, phone and GST number
// are each checked independently so the caller learns which one collided.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.Conflict("Email already registered")
	}
	if existing, err := uc.userRepo.GetByGSTNumber(ctx, input.GSTNumber); err == nil && existing != nil {
		return nil, errors.Conflict("GST number already registered")
	}
	if existing, err := uc.userRepo.GetByPhone(ctx, input.Phone); err == nil && existing != nil {
		return nil, errors.Conflict("Phone number already registered")
	}

	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to process password", err)
	}

	user := &entity.User{
		Email:           input.Email,
		Phone:           input.Phone,
		GSTNumber:       input.GSTNumber,
		PasswordHash:    passwordHash,
		CompanyName:     input.CompanyName,
		ContactPerson:   input.ContactPerson,
		BusinessLicense: input.BusinessLicense,
		Address:         input.Address,
		City:            input.City,
		State:           input.State,
		Pincode:         input.Pincode,
		UserType:        input.UserType,
		IsActive:        true,
		IsVerified:      false,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		logger.Error("User creation error: %v", err)
		return nil, errors.Internal("Registration failed. Please try again.", err)
	}

	logger.Info("User created: %s", user.ID)
	return user, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the identical failure so accounts cannot be enumerated.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*auth.TokenPair, *entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil || user == nil {
		logger.Warn("Failed login attempt for: %s", email)
		return nil, nil, errors.Unauthorized("Incorrect email or password", nil)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		logger.Warn("Failed login attempt for: %s", email)
		return nil, nil, errors.Unauthorized("Incorrect email or password", nil)
	}

	pair, err := uc.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, nil, errors.Internal("Failed to issue tokens", err)
	}

	logger.Info("User logged in: %s", user.ID)
	return pair, user, nil
}

// Refresh verifies a refresh token and mints a new pair. The presented
// refresh token stays valid until natural expiry; there is no rotation.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	userID, err := uc.tokens.Verify(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, errors.Unauthorized("Invalid refresh token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil || !user.IsActive {
		return nil, errors.Unauthorized("User not found or inactive", err)
	}

	pair, err := uc.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, errors.Internal("Failed to issue tokens", err)
	}

	logger.Info("Token refreshed for user: %s", user.ID)
	return pair, nil
}

// CheckGST runs the external verification for a raw GST number without
// touching any account.
func (uc *AuthUseCase) CheckGST(ctx context.Context, gstNumber string) (*service.GSTVerificationResult, error) {
	result, err := uc.gstVerifier.Verify(ctx, gstNumber)
	if err != nil {
		// Verifier troubles degrade to "not verified", never to a hard error.
		logger.Error("GST verification error: %v", err)
		return &service.GSTVerificationResult{
			Valid:   false,
			Message: "Verification service error",
		}, nil
	}
	return result, nil
}

// VerifyUserGST verifies the user's registered GST number and flips
// is_verified on success.
func (uc *AuthUseCase) VerifyUserGST(ctx context.Context, userID string) (*service.GSTVerificationResult, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, errors.NotFound("User", err)
	}

	result, err := uc.CheckGST(ctx, user.GSTNumber)
	if err != nil {
		return nil, err
	}

	if result.Valid && !user.IsVerified {
		user.IsVerified = true
		if result.CompanyName != "" && user.CompanyName == "" {
			user.CompanyName = result.CompanyName
		}
		if err := uc.userRepo.Update(ctx, user); err != nil {
			logger.Error("GST verification update error: %v", err)
			return nil, errors.Internal("Failed to update verification status", err)
		}
		logger.Info("User GST verified: %s", user.ID)
	}

	return result, nil
}
