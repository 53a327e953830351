package dashboard

import (
	"context"
	"math"
	"time"

	"servit/models"
	"servit/utils"

	"golang.org/x/sync/errgroup"
)

// Placeholder baselines for the user and partner change figures. There is
// no historical snapshot to compare against yet.
const (
	userChangeBaseline    = 10
	partnerChangeBaseline = 5
)

// PercentChange is the rounded month-over-month change in percent. A zero
// baseline reports 100 for any growth and 0 otherwise.
func PercentChange(current, previous int) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	change := float64(current-previous) / float64(previous) * 100
	return int(math.Floor(change + 0.5))
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// monthBounds returns the start of the current and previous calendar months
// in the clock's location, as epoch milliseconds.
func monthBounds(now time.Time) (startOfMonth, startOfPrevMonth int64) {
	y, m, _ := now.Date()
	cur := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	prev := time.Date(y, m-1, 1, 0, 0, 0, 0, now.Location())
	return toMillis(cur), toMillis(prev)
}

func (s *DefaultDashboardService) Stats(ctx context.Context) (*Stats, error) {
	var (
		users    []models.User
		partners []models.Partner
		docs     []models.CustomerBookings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.Users.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		partners, err = s.Partners.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		docs, err = s.Bookings.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, utils.NewInternalError("Failed to fetch dashboard statistics", err)
	}

	stats := &Stats{}

	stats.Users.Total = len(users)
	for _, u := range users {
		if u.Blocked {
			stats.Users.Blocked++
		}
	}
	stats.Users.Active = stats.Users.Total - stats.Users.Blocked
	stats.Users.Change = PercentChange(stats.Users.Total, stats.Users.Total-userChangeBaseline)

	stats.Partners.Total = len(partners)
	for _, p := range partners {
		switch p.VerificationStatus() {
		case models.VerificationVerified:
			stats.Partners.Verified++
		case models.VerificationRejected:
			stats.Partners.Rejected++
		default:
			stats.Partners.Pending++
		}
	}
	stats.Partners.Change = PercentChange(stats.Partners.Total, stats.Partners.Total-partnerChangeBaseline)

	startOfMonth, startOfPrevMonth := monthBounds(s.now())
	prevMonth := 0
	for _, doc := range docs {
		for _, b := range doc.Bookings {
			stats.Bookings.Total++
			switch {
			case b.CreatedAt >= startOfMonth:
				stats.Bookings.Monthly++
			case b.CreatedAt >= startOfPrevMonth:
				prevMonth++
			}
			switch b.BookingStatus {
			case models.BookingPending:
				stats.Bookings.Pending++
			case models.BookingAccepted:
				stats.Bookings.Accepted++
			case models.BookingCompleted:
				stats.Bookings.Completed++
			case models.BookingCancelled:
				stats.Bookings.Cancelled++
			}
		}
	}
	stats.Bookings.Change = PercentChange(stats.Bookings.Monthly, prevMonth)

	return stats, nil
}
