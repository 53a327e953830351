package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"servit/models"
	"servit/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recentBookingsLimit = 5
	trendWeeks          = 4
	week                = 7 * 24 * time.Hour
)

const (
	providerNotAssigned = "Not Assigned"
	providerUnknown     = "Unknown Provider"
)

func (s *DefaultDashboardService) RecentBookings(ctx context.Context) ([]RecentBooking, error) {
	docs, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch recent bookings", err)
	}

	var all []RecentBooking
	for _, doc := range docs {
		for _, b := range doc.Bookings {
			all = append(all, RecentBooking{
				Booking:      b,
				UserID:       doc.UserID,
				UserName:     doc.UserName,
				UserMobileNo: doc.MobileNo,
			})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt > all[j].CreatedAt
	})
	if len(all) > recentBookingsLimit {
		all = all[:recentBookingsLimit]
	}

	// Provider lookups run concurrently; each goroutine owns one slot.
	g, gctx := errgroup.WithContext(ctx)
	for i := range all {
		i := i
		g.Go(func() error {
			all[i].ProviderName = s.providerName(gctx, all[i].ProviderID)
			return nil
		})
	}
	_ = g.Wait()

	if all == nil {
		all = []RecentBooking{}
	}
	return all, nil
}

func (s *DefaultDashboardService) providerName(ctx context.Context, providerID string) string {
	if providerID == "" {
		return providerNotAssigned
	}
	partner, err := s.Partners.GetByID(ctx, providerID)
	if err != nil {
		utils.GetLogger().Warn("Failed to resolve provider name",
			zap.String("providerId", providerID), zap.Error(err))
		return providerNotAssigned
	}
	if partner == nil {
		return providerNotAssigned
	}
	if partner.PersonalDetails.FullName == "" {
		return providerUnknown
	}
	return partner.PersonalDetails.FullName
}

// PendingValidations lists partners awaiting review, oldest first.
func (s *DefaultDashboardService) PendingValidations(ctx context.Context) ([]models.PartnerView, error) {
	partners, err := s.Partners.GetAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch pending validations", err)
	}

	pending := []models.PartnerView{}
	for _, p := range partners {
		if p.VerificationStatus() == models.VerificationPending {
			pending = append(pending, models.NewPartnerView(p))
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt < pending[j].CreatedAt
	})
	return pending, nil
}

// BookingTrends buckets the last four rolling weeks, oldest first. Buckets
// are [now-(k+1)w, now-kw) and not aligned to calendar weeks.
func (s *DefaultDashboardService) BookingTrends(ctx context.Context) ([]WeekTrend, error) {
	docs, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch booking trends", err)
	}

	now := s.now()
	trends := make([]WeekTrend, 0, trendWeeks)
	for i := trendWeeks - 1; i >= 0; i-- {
		start := toMillis(now.Add(-time.Duration(i+1) * week))
		end := toMillis(now.Add(-time.Duration(i) * week))
		trends = append(trends, WeekTrend{
			Week:      fmt.Sprintf("Week %d", trendWeeks-i),
			WeekStart: start,
			WeekEnd:   end,
		})
	}

	for _, doc := range docs {
		for _, b := range doc.Bookings {
			for i := range trends {
				if b.CreatedAt >= trends[i].WeekStart && b.CreatedAt < trends[i].WeekEnd {
					trends[i].Bookings++
					break
				}
			}
		}
	}
	return trends, nil
}
