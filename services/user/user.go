package user

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"servit/database"
	"servit/models"
	"servit/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultUserService) nowMillis() int64 {
	if s.Now != nil {
		return s.Now().UnixMilli()
	}
	return time.Now().UnixMilli()
}

func (s *DefaultUserService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, utils.NewValidationError("limit and offset must not be negative")
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	users, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch users", err)
	}
	return users, nil
}

func (s *DefaultUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch user", err)
	}
	if u == nil {
		return nil, utils.NewNotFoundError("User not found")
	}
	return u, nil
}

// SetBlocked stamps blockedAt or unblockedAt and clears the other. Unblocking
// also clears the reason.
func (s *DefaultUserService) SetBlocked(ctx context.Context, id string, blocked bool, reason string) (*models.User, error) {
	reason = strings.TrimSpace(reason)
	if blocked && reason == "" {
		return nil, utils.NewValidationError("blockReason is required when blocking a user")
	}

	now := s.nowMillis()
	fields := bson.M{"blocked": blocked, "updatedAt": now}
	if blocked {
		fields["blockedAt"] = now
		fields["unblockedAt"] = nil
		fields["blockReason"] = reason
	} else {
		fields["blockedAt"] = nil
		fields["unblockedAt"] = now
		fields["blockReason"] = ""
	}

	if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewNotFoundError("User not found")
		}
		return nil, utils.NewInternalError("Failed to update user status", err)
	}
	utils.GetLogger().Info("User status updated", zap.String("userId", id), zap.Bool("blocked", blocked))
	return s.GetUser(ctx, id)
}

func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.NewNotFoundError("User not found")
		}
		return utils.NewInternalError("Failed to delete user", err)
	}
	utils.GetLogger().Info("User deleted", zap.String("userId", id))
	return nil
}

func (s *DefaultUserService) BookingHistory(ctx context.Context, id string) (*BookingHistory, error) {
	doc, err := s.Bookings.GetByUserID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch booking history", err)
	}
	history := &BookingHistory{UserID: id, Bookings: []models.Booking{}}
	if doc == nil {
		return history, nil
	}

	history.Bookings = append(history.Bookings, doc.Bookings...)
	sort.SliceStable(history.Bookings, func(i, j int) bool {
		return history.Bookings[i].CreatedAt > history.Bookings[j].CreatedAt
	})
	if doc.Address != "" {
		address := doc.Address
		history.Address = &address
	}
	return history, nil
}
