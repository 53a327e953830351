package partnerRepo

import (
	"servit/models"
)

// rawPartner accepts both the nested registration shape and the older flat
// shape some partner documents still carry.
type rawPartner struct {
	ID                  string                     `bson:"id"`
	PersonalDetails     *models.PersonalDetails    `bson:"personalDetails"`
	LocationDetails     *models.LocationDetails    `bson:"locationDetails"`
	Email               string                     `bson:"email"`
	Services            []string                   `bson:"services"`
	SubServices         map[string][]string        `bson:"subServices"`
	VerificationDetails models.VerificationDetails `bson:"verificationDetails"`
	CreatedAt           int64                      `bson:"createdAt"`

	FullName    string `bson:"fullName"`
	Name        string `bson:"name"`
	PhoneNumber string `bson:"phoneNumber"`
	MobileNo    string `bson:"mobileNo"`
	Gender      string `bson:"gender"`
	Pincode     string `bson:"pincode"`
	Address     string `bson:"address"`
	City        string `bson:"city"`
	State       string `bson:"state"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// normalize resolves the field fallbacks once so callers only see models.Partner.
func (r rawPartner) normalize() models.Partner {
	var personal models.PersonalDetails
	if r.PersonalDetails != nil {
		personal = *r.PersonalDetails
	}
	personal.FullName = firstNonEmpty(personal.FullName, r.FullName, r.Name)
	personal.MobileNo = firstNonEmpty(personal.MobileNo, r.MobileNo, r.PhoneNumber)
	personal.Gender = firstNonEmpty(personal.Gender, r.Gender)
	personal.Pincode = firstNonEmpty(personal.Pincode, r.Pincode)

	var location models.LocationDetails
	if r.LocationDetails != nil {
		location = *r.LocationDetails
	}
	location.Address = firstNonEmpty(location.Address, r.Address)
	location.City = firstNonEmpty(location.City, r.City)
	location.State = firstNonEmpty(location.State, r.State)

	services := r.Services
	if services == nil {
		services = []string{}
	}
	subServices := r.SubServices
	if subServices == nil {
		subServices = map[string][]string{}
	}

	return models.Partner{
		ID:                  r.ID,
		PersonalDetails:     personal,
		Email:               r.Email,
		LocationDetails:     location,
		Services:            services,
		SubServices:         subServices,
		VerificationDetails: r.VerificationDetails,
		CreatedAt:           r.CreatedAt,
	}
}
