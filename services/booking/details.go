package booking

import (
	"context"

	"servit/utils"
)

// GetBookingDetails scans customer documents for the first booking with the
// given id.
func (s *DefaultBookingService) GetBookingDetails(ctx context.Context, bookingID string) (*Details, error) {
	docs, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch booking details", err)
	}

	for _, doc := range docs {
		for _, b := range doc.Bookings {
			if b.BookingID != bookingID {
				continue
			}
			provider := newPartnerResolver(s.Partners).resolve(ctx, b.ProviderID)
			row := Row{
				Booking:      b,
				UserID:       doc.UserID,
				UserAddress:  doc.Address,
				UserPincode:  ExtractPincode(doc.Address),
				UserCity:     ExtractCity(doc.Address),
				UserName:     doc.UserName,
				UserMobileNo: doc.MobileNo,
				ProviderInfo: provider,
			}
			return &Details{
				Booking:      row,
				ProviderInfo: provider,
				UserInfo: UserInfo{
					ID:       doc.UserID,
					Address:  doc.Address,
					UserName: doc.UserName,
					MobileNo: doc.MobileNo,
				},
			}, nil
		}
	}
	return nil, utils.NewNotFoundError("Booking not found")
}
