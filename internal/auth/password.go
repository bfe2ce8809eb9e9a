package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword compares a password with its hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// AdminAccount is the single shop manager allowed to use the admin routes.
type AdminAccount struct {
	Email        string
	PasswordHash string
}

// Authenticate checks email (case-insensitive) and password against the account.
func (a AdminAccount) Authenticate(email, password string) error {
	if a.Email == "" || a.PasswordHash == "" {
		return ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(email), a.Email) {
		return ErrInvalidCredentials
	}
	if !CheckPassword(password, a.PasswordHash) {
		return ErrInvalidCredentials
	}
	return nil
}
