package auth

import (
	"context"
	"errors"

	"servit/database"
	"servit/models"
	"servit/utils"

	"go.uber.org/zap"
)

// ValidateSession never trusts the role or access carried in the token; the
// admin is re-read on every call so disablement applies immediately.
func (s *DefaultAuthService) ValidateSession(ctx context.Context, token string) (*models.Admin, error) {
	if token == "" {
		return nil, utils.NewUnauthorizedError("No token provided")
	}
	claims, err := s.Signer.Verify(token)
	if err != nil {
		if errors.Is(err, utils.ErrExpiredToken) {
			return nil, utils.NewUnauthorizedError("Token expired")
		}
		return nil, utils.NewUnauthorizedError("Invalid token")
	}

	admin, err := s.Repo.GetByID(ctx, claims.AdminID())
	if err != nil {
		return nil, utils.NewInternalError("failed to load admin", err)
	}
	if admin == nil {
		return nil, utils.NewUnauthorizedError("Admin not found")
	}
	if !admin.IsActive {
		return nil, utils.NewForbiddenError("Account is disabled")
	}
	return admin, nil
}

func (s *DefaultAuthService) Refresh(admin *models.Admin) (*AuthResponse, error) {
	if admin == nil {
		return nil, utils.NewUnauthorizedError("Not authenticated")
	}
	return s.issue(admin)
}

// Logout is a no-op; tokens are stateless and the client discards them.
func (s *DefaultAuthService) Logout() {}

func (s *DefaultAuthService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("failed to list admins", err)
	}
	return admins, nil
}

func (s *DefaultAuthService) SetAdminStatus(ctx context.Context, actorID, targetID string, active bool) (*models.Admin, error) {
	if actorID == targetID {
		return nil, utils.NewValidationError("Cannot disable your own account")
	}

	if err := s.Repo.SetActive(ctx, targetID, active); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewNotFoundError("Admin not found")
		}
		return nil, utils.NewInternalError("failed to update admin status", err)
	}

	admin, err := s.Repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, utils.NewInternalError("failed to load admin", err)
	}
	if admin == nil {
		return nil, utils.NewNotFoundError("Admin not found")
	}
	if s.Cache != nil {
		s.Cache.Delete(ctx, utils.AdminCacheKey(admin.Email))
	}

	utils.GetLogger().Info("Admin status updated",
		zap.String("adminId", targetID), zap.String("actorId", actorID), zap.Bool("isActive", active))
	return admin, nil
}
