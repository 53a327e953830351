package partner

import (
	"context"
	"errors"
	"strings"
	"time"

	"servit/database"
	"servit/models"
	"servit/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultPartnerService) nowMillis() int64 {
	if s.Now != nil {
		return s.Now().UnixMilli()
	}
	return time.Now().UnixMilli()
}

func validStatus(status string) bool {
	switch status {
	case models.VerificationPending, models.VerificationVerified, models.VerificationRejected, StatusAll:
		return true
	}
	return false
}

func (s *DefaultPartnerService) ListPartners(ctx context.Context, status string) ([]models.PartnerView, error) {
	if status != "" && !validStatus(status) {
		return nil, utils.NewValidationError("status must be one of pending_verification, verified, rejected, all")
	}
	partners, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch partners", err)
	}

	views := []models.PartnerView{}
	for _, p := range partners {
		view := models.NewPartnerView(p)
		if status == "" || status == StatusAll || view.VerificationStatus == status {
			views = append(views, view)
		}
	}
	return views, nil
}

func (s *DefaultPartnerService) GetPartner(ctx context.Context, id string) (*models.PartnerView, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch partner", err)
	}
	if p == nil {
		return nil, utils.NewNotFoundError("Partner not found")
	}
	view := models.NewPartnerView(*p)
	return &view, nil
}

// Verify marks the partner verified and clears any earlier rejection.
func (s *DefaultPartnerService) Verify(ctx context.Context, id, actorID, remark string) (*models.PartnerView, error) {
	set := bson.M{
		"verificationDetails.verified":   true,
		"verificationDetails.rejected":   false,
		"verificationDetails.verifiedAt": s.nowMillis(),
		"verificationDetails.verifiedBy": actorID,
		"status":                         models.VerificationVerified,
	}
	if remark != "" {
		set["verificationDetails.remark"] = remark
	}
	unset := []string{"verificationDetails.rejectionReason"}

	if err := s.update(ctx, id, set, unset); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Partner verified", zap.String("partnerId", id), zap.String("actorId", actorID))
	return s.GetPartner(ctx, id)
}

// Reject marks the partner rejected with a required reason and clears any
// earlier verification.
func (s *DefaultPartnerService) Reject(ctx context.Context, id, reason, remark string) (*models.PartnerView, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, utils.NewValidationError("rejectionReason is required")
	}
	set := bson.M{
		"verificationDetails.verified":        false,
		"verificationDetails.rejected":        true,
		"verificationDetails.rejectionReason": reason,
		"verificationDetails.remark":          remark,
		"status":                              models.VerificationRejected,
	}
	unset := []string{"verificationDetails.verifiedAt", "verificationDetails.verifiedBy"}

	if err := s.update(ctx, id, set, unset); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Partner rejected", zap.String("partnerId", id))
	return s.GetPartner(ctx, id)
}

func (s *DefaultPartnerService) update(ctx context.Context, id string, set bson.M, unset []string) error {
	if err := s.Repo.UpdateFields(ctx, id, set, unset); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.NewNotFoundError("Partner not found")
		}
		return utils.NewInternalError("Failed to update partner", err)
	}
	return nil
}
