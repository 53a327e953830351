package partner

import (
	"context"
	"time"

	partnerRepo "servit/database/repository/partner"
	"servit/models"
)

// PartnerService lists partners and records verification decisions.
type PartnerService interface {
	// ListPartners filters by derived status; "" or "all" returns everyone.
	ListPartners(ctx context.Context, status string) ([]models.PartnerView, error)
	GetPartner(ctx context.Context, id string) (*models.PartnerView, error)
	Verify(ctx context.Context, id, actorID, remark string) (*models.PartnerView, error)
	Reject(ctx context.Context, id, reason, remark string) (*models.PartnerView, error)
}

// DefaultPartnerService is the production implementation.
type DefaultPartnerService struct {
	Repo partnerRepo.PartnerRepository
	Now  func() time.Time
}

// StatusAll disables the status filter on ListPartners.
const StatusAll = "all"
