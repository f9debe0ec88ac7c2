package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gormrepo "mfgmarket/internal/adapter/repository"
	"mfgmarket/internal/domain/service"
	"mfgmarket/internal/infrastructure/auth"
	"mfgmarket/pkg/errors"
)

type stubVerifier struct {
	result *service.GSTVerificationResult
}

func (v *stubVerifier) Verify(ctx context.Context, gstNumber string) (*service.GSTVerificationResult, error) {
	return v.result, nil
}

func newAuthFixture(t *testing.T) (*AuthUseCase, *auth.TokenService) {
	t.Helper()

	db := newTestDB(t)
	userRepo := gormrepo.NewGormUserRepository(db)
	tokens := auth.NewTokenService("test-secret", 15*time.Minute, 7*24*time.Hour)
	verifier := &stubVerifier{result: &service.GSTVerificationResult{Valid: true, Message: "ok"}}

	return NewAuthUseCase(userRepo, tokens, verifier), tokens
}

func registerAlice(t *testing.T, uc *AuthUseCase) RegisterInput {
	t.Helper()

	input := RegisterInput{
		Email:       "alice@x.com",
		Phone:       "9999999999",
		Password:    "Str0ngPass!",
		CompanyName: "Alice Alloys",
		GSTNumber:   "27ABCDE1234F1Z5",
		UserType:    "seller",
	}

	_, err := uc.Register(context.Background(), input)
	require.NoError(t, err)
	return input
}

func TestRegisterCreatesUnverifiedUser(t *testing.T) {
	uc, _ := newAuthFixture(t)

	user, err := uc.Register(context.Background(), RegisterInput{
		Email:       "alice@x.com",
		Phone:       "9999999999",
		Password:    "Str0ngPass!",
		CompanyName: "Alice Alloys",
		GSTNumber:   "27ABCDE1234F1Z5",
		UserType:    "seller",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.False(t, user.IsVerified)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "Str0ngPass!", user.PasswordHash)
}

func TestRegisterConflictsAreDistinct(t *testing.T) {
	uc, _ := newAuthFixture(t)
	registerAlice(t, uc)

	tests := []struct {
		name    string
		input   RegisterInput
		message string
	}{
		{
			name: "duplicate email",
			input: RegisterInput{
				Email: "alice@x.com", Phone: "8888888888", Password: "Str0ngPass!",
				CompanyName: "Other Co", GSTNumber: "09FGHIJ5678K2Z9", UserType: "buyer",
			},
			message: "Email already registered",
		},
		{
			name: "duplicate gst",
			input: RegisterInput{
				Email: "bob@x.com", Phone: "8888888888", Password: "Str0ngPass!",
				CompanyName: "Other Co", GSTNumber: "27ABCDE1234F1Z5", UserType: "buyer",
			},
			message: "GST number already registered",
		},
		{
			name: "duplicate phone",
			input: RegisterInput{
				Email: "bob@x.com", Phone: "9999999999", Password: "Str0ngPass!",
				CompanyName: "Other Co", GSTNumber: "09FGHIJ5678K2Z9", UserType: "buyer",
			},
			message: "Phone number already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, "CONFLICT"))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoginIssuesVerifiableTokenPair(t *testing.T) {
	uc, tokens := newAuthFixture(t)
	registerAlice(t, uc)

	pair, user, err := uc.Login(context.Background(), "alice@x.com", "Str0ngPass!")
	require.NoError(t, err)

	subject, err := tokens.Verify(pair.AccessToken, auth.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	uc, _ := newAuthFixture(t)
	registerAlice(t, uc)

	_, _, wrongPassErr := uc.Login(context.Background(), "alice@x.com", "wrong")
	require.Error(t, wrongPassErr)
	assert.True(t, errors.Is(wrongPassErr, "UNAUTHORIZED"))

	_, _, unknownErr := uc.Login(context.Background(), "nobody@x.com", "any")
	require.Error(t, unknownErr)
	assert.True(t, errors.Is(unknownErr, "UNAUTHORIZED"))

	// Unknown email and bad password read identically to the caller.
	assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())
}

func TestRefreshMintsNewPair(t *testing.T) {
	uc, tokens := newAuthFixture(t)
	registerAlice(t, uc)

	pair, user, err := uc.Login(context.Background(), "alice@x.com", "Str0ngPass!")
	require.NoError(t, err)

	newPair, err := uc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)

	subject, err := tokens.Verify(newPair.AccessToken, auth.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	uc, _ := newAuthFixture(t)
	registerAlice(t, uc)

	pair, _, err := uc.Login(context.Background(), "alice@x.com", "Str0ngPass!")
	require.NoError(t, err)

	_, err = uc.Refresh(context.Background(), pair.AccessToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestRefreshRejectsInactivePrincipal(t *testing.T) {
	db := newTestDB(t)
	userRepo := gormrepo.NewGormUserRepository(db)
	tokens := auth.NewTokenService("test-secret", 15*time.Minute, 7*24*time.Hour)
	uc := NewAuthUseCase(userRepo, tokens, &stubVerifier{result: &service.GSTVerificationResult{Valid: true}})

	user, err := uc.Register(context.Background(), RegisterInput{
		Email: "alice@x.com", Phone: "9999999999", Password: "Str0ngPass!",
		CompanyName: "Alice Alloys", GSTNumber: "27ABCDE1234F1Z5", UserType: "seller",
	})
	require.NoError(t, err)

	pair, _, err := uc.Login(context.Background(), "alice@x.com", "Str0ngPass!")
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, userRepo.Update(context.Background(), user))

	_, err = uc.Refresh(context.Background(), pair.RefreshToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestVerifyUserGSTFlipsVerifiedFlag(t *testing.T) {
	db := newTestDB(t)
	userRepo := gormrepo.NewGormUserRepository(db)
	tokens := auth.NewTokenService("test-secret", 15*time.Minute, 7*24*time.Hour)
	uc := NewAuthUseCase(userRepo, tokens, &stubVerifier{result: &service.GSTVerificationResult{Valid: true, Message: "ok"}})

	user, err := uc.Register(context.Background(), RegisterInput{
		Email: "alice@x.com", Phone: "9999999999", Password: "Str0ngPass!",
		CompanyName: "Alice Alloys", GSTNumber: "27ABCDE1234F1Z5", UserType: "seller",
	})
	require.NoError(t, err)
	require.False(t, user.IsVerified)

	result, err := uc.VerifyUserGST(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	updated, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsVerified)
}

func TestVerifyUserGSTKeepsUnverifiedOnFailure(t *testing.T) {
	db := newTestDB(t)
	userRepo := gormrepo.NewGormUserRepository(db)
	tokens := auth.NewTokenService("test-secret", 15*time.Minute, 7*24*time.Hour)
	uc := NewAuthUseCase(userRepo, tokens, &stubVerifier{result: &service.GSTVerificationResult{Valid: false, Message: "no"}})

	user, err := uc.Register(context.Background(), RegisterInput{
		Email: "alice@x.com", Phone: "9999999999", Password: "Str0ngPass!",
		CompanyName: "Alice Alloys", GSTNumber: "27ABCDE1234F1Z5", UserType: "seller",
	})
	require.NoError(t, err)

	result, err := uc.VerifyUserGST(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, result.Valid)

	updated, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsVerified)
}
