package auth

import (
	"context"
	"errors"
	"strings"

	"servit/database"
	"servit/models"
	"servit/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *DefaultAuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Name == "" {
		return nil, utils.NewValidationError("name and email are required")
	}
	if len(req.Password) < 8 {
		return nil, utils.NewValidationError("password must be at least 8 characters")
	}
	role := req.Role
	if role == "" {
		role = models.RoleSubAdmin
	}
	if !models.IsValidRole(role) {
		return nil, utils.NewValidationError("invalid role")
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewInternalError("failed to check existing admin", err)
	}
	if existing != nil {
		return nil, utils.NewConflictError("Admin with this email already exists")
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return nil, utils.NewInternalError("failed to hash password", err)
	}

	access := req.Access
	if access == nil {
		access = []string{}
	}
	admin := &models.Admin{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Mobile:       req.Mobile,
		Role:         role,
		Access:       access,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.Repo.Create(ctx, admin); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return nil, utils.NewConflictError("Admin with this email already exists")
		}
		return nil, utils.NewInternalError("failed to create admin", err)
	}

	utils.GetLogger().Info("Admin registered", zap.String("adminId", admin.ID), zap.String("role", admin.Role))
	return s.issue(admin)
}

// Login finds the admin through the cache and re-reads the record by id, so
// the password hash and active flag always come from the store.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, utils.NewValidationError("email and password are required")
	}

	admin, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !s.Hasher.Verify(admin.PasswordHash, password) {
		return nil, utils.NewUnauthorizedError("Invalid credentials")
	}
	if !admin.IsActive {
		return nil, utils.NewForbiddenError("Account is disabled")
	}
	return s.issue(admin)
}

func (s *DefaultAuthService) lookupByEmail(ctx context.Context, email string) (*models.Admin, error) {
	key := utils.AdminCacheKey(email)

	var cached models.Admin
	if s.Cache != nil && s.Cache.Get(ctx, key, &cached) && cached.ID != "" {
		admin, err := s.Repo.GetByID(ctx, cached.ID)
		if err != nil {
			return nil, utils.NewInternalError("failed to load admin", err)
		}
		if admin != nil && admin.Email == email {
			return admin, nil
		}
		s.Cache.Delete(ctx, key)
	}

	admin, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewInternalError("failed to load admin", err)
	}
	if admin != nil && s.Cache != nil {
		s.Cache.Set(ctx, key, admin)
	}
	return admin, nil
}

func (s *DefaultAuthService) issue(admin *models.Admin) (*AuthResponse, error) {
	token, err := s.Signer.Sign(admin.ID, admin.Role, admin.Access)
	if err != nil {
		return nil, utils.NewInternalError("failed to sign token", err)
	}
	return &AuthResponse{Token: token, Admin: admin}, nil
}
