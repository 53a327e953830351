package auth

import (
	"context"
	"time"

	adminRepo "servit/database/repository/admin"
	"servit/models"
	"servit/utils"
)

// AuthService manages admin credentials and sessions.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	// ValidateSession resolves a bearer token to the current admin record.
	ValidateSession(ctx context.Context, token string) (*models.Admin, error)
	Refresh(admin *models.Admin) (*AuthResponse, error)
	Logout()

	ListAdmins(ctx context.Context) ([]models.Admin, error)
	SetAdminStatus(ctx context.Context, actorID, targetID string, active bool) (*models.Admin, error)
}

// Signer issues and verifies session tokens.
type Signer interface {
	Sign(adminID, role string, access []string) (string, error)
	Verify(token string) (*utils.SessionClaims, error)
}

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// RegisterRequest carries the fields accepted by Register.
type RegisterRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	Mobile   string   `json:"mobile" binding:"required"`
	Role     string   `json:"role"`
	Access   []string `json:"access"`
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	Token string        `json:"token"`
	Admin *models.Admin `json:"admin"`
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo   adminRepo.AdminRepository
	Cache  utils.Cache
	Signer Signer
	Hasher Hasher
	Now    func() time.Time
}

func (s *DefaultAuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
