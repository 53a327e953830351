package booking

import (
	"context"

	partnerRepo "servit/database/repository/partner"
	"servit/models"
	"servit/utils"

	"go.uber.org/zap"
)

// partnerResolver memoizes partner lookups for the duration of one request.
type partnerResolver struct {
	repo  partnerRepo.PartnerRepository
	cache map[string]*models.PartnerView
}

func newPartnerResolver(repo partnerRepo.PartnerRepository) *partnerResolver {
	return &partnerResolver{repo: repo, cache: map[string]*models.PartnerView{}}
}

// resolve returns nil for unassigned, unknown or unreadable partners. Read
// errors are logged and not retried within the request.
func (r *partnerResolver) resolve(ctx context.Context, providerID string) *models.PartnerView {
	if providerID == "" {
		return nil
	}
	if view, ok := r.cache[providerID]; ok {
		return view
	}

	var view *models.PartnerView
	partner, err := r.repo.GetByID(ctx, providerID)
	switch {
	case err != nil:
		utils.GetLogger().Warn("Failed to resolve booking provider",
			zap.String("providerId", providerID), zap.Error(err))
	case partner != nil:
		v := models.NewPartnerView(*partner)
		view = &v
	}
	r.cache[providerID] = view
	return view
}
