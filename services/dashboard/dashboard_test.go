package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"servit/models"

	"go.mongodb.org/mongo-driver/bson"
)

type stubUsers struct{ users []models.User }

func (s stubUsers) GetByID(context.Context, string) (*models.User, error) { return nil, nil }
func (s stubUsers) GetAll(context.Context) ([]models.User, error)         { return s.users, nil }
func (s stubUsers) UpdateFields(context.Context, string, bson.M) error    { return nil }
func (s stubUsers) Delete(context.Context, string) error                  { return nil }

func (s stubUsers) List(context.Context, models.UserFilter) ([]models.User, error) {
	return s.users, nil
}

// stubPartners is read-only after construction, so concurrent lookups are safe.
type stubPartners struct {
	partners []models.Partner
	failing  map[string]bool
}

func (s stubPartners) GetAll(context.Context) ([]models.Partner, error) { return s.partners, nil }
func (s stubPartners) GetByID(_ context.Context, id string) (*models.Partner, error) {
	if s.failing[id] {
		return nil, errors.New("lookup failed")
	}
	for _, p := range s.partners {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}
func (s stubPartners) UpdateFields(context.Context, string, bson.M, []string) error { return nil }

type stubBookings struct {
	docs []models.CustomerBookings
	err  error
}

func (s stubBookings) GetAll(context.Context) ([]models.CustomerBookings, error) {
	return s.docs, s.err
}
func (s stubBookings) GetByUserID(context.Context, string) (*models.CustomerBookings, error) {
	return nil, nil
}

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func at(t time.Time) int64 { return t.UnixMilli() }

func TestPercentChange(t *testing.T) {
	cases := []struct {
		current, previous, want int
	}{
		{0, 0, 0},
		{5, 0, 100},
		{10, 10, 0},
		{15, 10, 50},
		{5, 10, -50},
		{1, 3, -67},
		{2, 3, -33},
		{4, 3, 33},
		{3, 2, 50},
		{1, 8, -87},
	}
	for _, tc := range cases {
		if got := PercentChange(tc.current, tc.previous); got != tc.want {
			t.Errorf("PercentChange(%d, %d) = %d, want %d", tc.current, tc.previous, got, tc.want)
		}
	}
}

func TestStats(t *testing.T) {
	svc := &DefaultDashboardService{
		Users: stubUsers{users: []models.User{
			{ID: "u1"}, {ID: "u2", Blocked: true}, {ID: "u3"},
		}},
		Partners: stubPartners{partners: []models.Partner{
			{ID: "p1"},
			{ID: "p2", VerificationDetails: models.VerificationDetails{Verified: true}},
			{ID: "p3", VerificationDetails: models.VerificationDetails{Rejected: true}},
		}},
		Bookings: stubBookings{docs: []models.CustomerBookings{
			{UserID: "u1", Bookings: []models.Booking{
				{BookingStatus: models.BookingPending, CreatedAt: at(fixedNow.Add(-time.Hour))},
				{BookingStatus: models.BookingCompleted, CreatedAt: at(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))},
				{BookingStatus: models.BookingAccepted, CreatedAt: at(time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC))},
			}},
			{UserID: "u3", Bookings: []models.Booking{
				{BookingStatus: models.BookingCancelled, CreatedAt: at(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))},
				{BookingStatus: "unknown", CreatedAt: at(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC))},
			}},
		}},
		Now: func() time.Time { return fixedNow },
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.Users != (UserStats{Total: 3, Active: 2, Blocked: 1, Change: PercentChange(3, 3-userChangeBaseline)}) {
		t.Errorf("unexpected user stats %+v", stats.Users)
	}
	if stats.Partners != (PartnerStats{Total: 3, Verified: 1, Pending: 1, Rejected: 1, Change: PercentChange(3, 3-partnerChangeBaseline)}) {
		t.Errorf("unexpected partner stats %+v", stats.Partners)
	}
	want := BookingStats{Total: 5, Monthly: 2, Pending: 1, Accepted: 1, Completed: 1, Cancelled: 1, Change: 0}
	if stats.Bookings != want {
		t.Errorf("bookings = %+v, want %+v", stats.Bookings, want)
	}
}

func TestStatsStoreFailure(t *testing.T) {
	svc := &DefaultDashboardService{
		Users:    stubUsers{},
		Partners: stubPartners{},
		Bookings: stubBookings{err: errors.New("down")},
	}
	if _, err := svc.Stats(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestRecentBookingsProviderNames(t *testing.T) {
	svc := &DefaultDashboardService{
		Partners: stubPartners{
			partners: []models.Partner{
				{ID: "named", PersonalDetails: models.PersonalDetails{FullName: "Asha"}},
				{ID: "nameless"},
			},
			failing: map[string]bool{"broken": true},
		},
		Bookings: stubBookings{docs: []models.CustomerBookings{
			{UserID: "u1", UserName: "Ravi", Bookings: []models.Booking{
				{BookingID: "b1", ProviderID: "named", CreatedAt: 60},
				{BookingID: "b2", ProviderID: "nameless", CreatedAt: 50},
				{BookingID: "b3", ProviderID: "ghost", CreatedAt: 40},
			}},
			{UserID: "u2", Bookings: []models.Booking{
				{BookingID: "b4", ProviderID: "broken", CreatedAt: 30},
				{BookingID: "b5", CreatedAt: 20},
				{BookingID: "b6", ProviderID: "named", CreatedAt: 10},
			}},
		}},
	}

	recent, err := svc.RecentBookings(context.Background())
	if err != nil {
		t.Fatalf("RecentBookings: %v", err)
	}
	want := []struct{ id, provider string }{
		{"b1", "Asha"},
		{"b2", providerUnknown},
		{"b3", providerNotAssigned},
		{"b4", providerNotAssigned},
		{"b5", providerNotAssigned},
	}
	if len(recent) != len(want) {
		t.Fatalf("expected %d bookings, got %d", len(want), len(recent))
	}
	for i, w := range want {
		if recent[i].BookingID != w.id || recent[i].ProviderName != w.provider {
			t.Errorf("recent[%d] = %s/%s, want %s/%s", i, recent[i].BookingID, recent[i].ProviderName, w.id, w.provider)
		}
	}
	if recent[0].UserID != "u1" || recent[0].UserName != "Ravi" {
		t.Errorf("expected owner details on row, got %+v", recent[0])
	}
}

func TestRecentBookingsEmpty(t *testing.T) {
	svc := &DefaultDashboardService{Partners: stubPartners{}, Bookings: stubBookings{}}
	recent, err := svc.RecentBookings(context.Background())
	if err != nil || recent == nil || len(recent) != 0 {
		t.Fatalf("expected empty non-nil list, got %v (%v)", recent, err)
	}
}

func TestPendingValidationsOldestFirst(t *testing.T) {
	svc := &DefaultDashboardService{Partners: stubPartners{partners: []models.Partner{
		{ID: "new", CreatedAt: 300},
		{ID: "done", CreatedAt: 100, VerificationDetails: models.VerificationDetails{Verified: true}},
		{ID: "old", CreatedAt: 200},
		{ID: "no", CreatedAt: 50, VerificationDetails: models.VerificationDetails{Rejected: true}},
	}}}

	pending, err := svc.PendingValidations(context.Background())
	if err != nil {
		t.Fatalf("PendingValidations: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != "old" || pending[1].ID != "new" {
		t.Fatalf("unexpected pending list %+v", pending)
	}
	if pending[0].VerificationStatus != models.VerificationPending {
		t.Fatalf("expected derived status on view")
	}
}

func TestBookingTrendsBuckets(t *testing.T) {
	day := 24 * time.Hour
	svc := &DefaultDashboardService{
		Bookings: stubBookings{docs: []models.CustomerBookings{{Bookings: []models.Booking{
			{CreatedAt: at(fixedNow.Add(-1 * day))},
			{CreatedAt: at(fixedNow.Add(-2 * day))},
			{CreatedAt: at(fixedNow.Add(-7 * day))},
			{CreatedAt: at(fixedNow.Add(-27 * day))},
			{CreatedAt: at(fixedNow.Add(-28 * day))},
			{CreatedAt: at(fixedNow.Add(-40 * day))},
			{CreatedAt: at(fixedNow)},
		}}}},
		Now: func() time.Time { return fixedNow },
	}

	trends, err := svc.BookingTrends(context.Background())
	if err != nil {
		t.Fatalf("BookingTrends: %v", err)
	}
	if len(trends) != 4 {
		t.Fatalf("expected 4 weeks, got %d", len(trends))
	}
	wantCounts := []int{2, 0, 0, 3}
	for i, tr := range trends {
		if tr.Week != []string{"Week 1", "Week 2", "Week 3", "Week 4"}[i] {
			t.Errorf("trends[%d].Week = %q", i, tr.Week)
		}
		if tr.Bookings != wantCounts[i] {
			t.Errorf("trends[%d].Bookings = %d, want %d", i, tr.Bookings, wantCounts[i])
		}
	}
	if trends[3].WeekEnd != at(fixedNow) || trends[0].WeekStart != at(fixedNow.Add(-28*day)) {
		t.Errorf("unexpected window %d..%d", trends[0].WeekStart, trends[3].WeekEnd)
	}
}
