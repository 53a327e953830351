package booking

import (
	"context"
	"sort"
	"strings"

	"servit/models"
	"servit/utils"
)

// ListBookings flattens, filters, enriches, sorts and paginates bookings.
// Total and facets describe the whole filtered set, not the page.
func (s *DefaultBookingService) ListBookings(ctx context.Context, filter Filter) (*ListResult, error) {
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, utils.NewValidationError("limit and offset must not be negative")
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultLimit
	}

	docs, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch bookings", err)
	}

	rows := []Row{}
	for _, doc := range flatten(docs) {
		if filter.matches(doc) {
			rows = append(rows, doc)
		}
	}

	resolver := newPartnerResolver(s.Partners)
	for i := range rows {
		rows[i].ProviderInfo = resolver.resolve(ctx, rows[i].ProviderID)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt > rows[j].CreatedAt
	})

	return &ListResult{
		Bookings: paginate(rows, filter.Offset, filter.Limit),
		Total:    len(rows),
		Filters:  facetsOf(rows),
	}, nil
}

func flatten(docs []models.CustomerBookings) []Row {
	var rows []Row
	for _, doc := range docs {
		pincode := ExtractPincode(doc.Address)
		city := ExtractCity(doc.Address)
		for _, b := range doc.Bookings {
			rows = append(rows, Row{
				Booking:     b,
				UserID:      doc.UserID,
				UserAddress: doc.Address,
				UserPincode: pincode,
				UserCity:    city,
			})
		}
	}
	return rows
}

// matches applies every set filter. A city filter is skipped when no city
// could be derived; a pincode filter requires a derived pincode.
func (f Filter) matches(r Row) bool {
	if f.BookingID != "" && !strings.Contains(strings.ToLower(r.BookingID), strings.ToLower(f.BookingID)) {
		return false
	}
	if f.Service != "" && r.ServiceName != f.Service {
		return false
	}
	if f.Status != "" && r.BookingStatus != f.Status {
		return false
	}
	if f.ProviderID != "" && r.ProviderID != f.ProviderID {
		return false
	}
	if f.StartDate != 0 && r.CreatedAt < f.StartDate {
		return false
	}
	if f.EndDate != 0 && r.CreatedAt > f.EndDate {
		return false
	}
	if f.City != "" && r.UserCity != "" && !strings.Contains(strings.ToLower(r.UserCity), strings.ToLower(f.City)) {
		return false
	}
	if f.Pincode != "" && r.UserPincode != f.Pincode {
		return false
	}
	return true
}

func paginate(rows []Row, offset, limit int) []Row {
	if offset >= len(rows) {
		return []Row{}
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

type distinct struct {
	seen   map[string]bool
	values []string
}

func (d *distinct) add(v string) {
	if v == "" || d.seen[v] {
		return
	}
	if d.seen == nil {
		d.seen = map[string]bool{}
	}
	d.seen[v] = true
	d.values = append(d.values, v)
}

func (d *distinct) list() []string {
	if d.values == nil {
		return []string{}
	}
	return d.values
}

func facetsOf(rows []Row) Facets {
	var services, cities, pincodes, statuses distinct
	for _, r := range rows {
		services.add(r.ServiceName)
		cities.add(r.UserCity)
		pincodes.add(r.UserPincode)
		statuses.add(r.BookingStatus)
	}
	return Facets{
		Services: services.list(),
		Cities:   cities.list(),
		Pincodes: pincodes.list(),
		Statuses: statuses.list(),
	}
}
