package services

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func testAdminService(t *testing.T, username, password string) *AdminService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return NewAdminService(username, string(hash))
}

func TestAdminService_Authenticate(t *testing.T) {
	service := testAdminService(t, "admin", "portfolio123")

	t.Run("accepts correct credentials", func(t *testing.T) {
		admin, err := service.Authenticate("admin", "portfolio123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if admin.Username != "admin" {
			t.Errorf("expected username admin, got %q", admin.Username)
		}
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := service.Authenticate("admin", "wrong-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects unknown username", func(t *testing.T) {
		_, err := service.Authenticate("root", "portfolio123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong username and wrong password are indistinguishable", func(t *testing.T) {
		_, errUser := service.Authenticate("root", "portfolio123")
		_, errPass := service.Authenticate("admin", "wrong-password")
		if !errors.Is(errUser, errPass) {
			t.Errorf("expected identical errors, got %v and %v", errUser, errPass)
		}
	})
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("portfolio123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("portfolio123")); err != nil {
		t.Errorf("hash does not verify against original password: %v", err)
	}
}
