package services

import (
	"fmt"

	"github.com/sriramnerella/portfolio-server/src/models"
	"golang.org/x/crypto/bcrypt"
)

// AdminService verifies credentials against the single configured admin
// identity. There is no user table; the username and password hash are
// loaded from configuration at startup.
type AdminService struct {
	admin models.Admin
}

// NewAdminService creates an admin service for the given credentials
func NewAdminService(username, passwordHash string) *AdminService {
	return &AdminService{admin: models.Admin{
		Username:     username,
		PasswordHash: passwordHash,
	}}
}

// HashPassword hashes a plain-text password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Authenticate checks a username/password pair and returns the admin
// identity on success. Wrong username and wrong password both return
// ErrInvalidCredentials; the hash comparison runs on either path so the
// two failures take the same amount of time.
func (as *AdminService) Authenticate(username, password string) (*models.Admin, error) {
	err := bcrypt.CompareHashAndPassword([]byte(as.admin.PasswordHash), []byte(password))
	if username != as.admin.Username || err != nil {
		return nil, ErrInvalidCredentials
	}

	admin := as.admin
	return &admin, nil
}
