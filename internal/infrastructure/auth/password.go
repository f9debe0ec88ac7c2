package auth

import (
	"golang.org/x/crypto/bcrypt"

	"mfgmarket/pkg/logger"
)

// HashPassword returns a bcrypt digest with a per-call random salt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the digest. A malformed
// digest or any internal bcrypt failure is logged and reported as a plain
// mismatch; it never propagates to the caller.
func VerifyPassword(password, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if err != nil {
		if err != bcrypt.ErrMismatchedHashAndPassword {
			logger.Error("Password verification error: %v", err)
		}
		return false
	}
	return true
}
