package models

// Derived partner verification states.
const (
	VerificationPending  = "pending_verification"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

type PersonalDetails struct {
	FullName string `bson:"fullName" json:"fullName"`
	MobileNo string `bson:"mobileNo" json:"mobileNo"`
	Gender   string `bson:"gender" json:"gender"`
	Pincode  string `bson:"pincode" json:"pincode"`
}

type LocationDetails struct {
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
}

type VerificationDetails struct {
	Verified        bool   `bson:"verified" json:"verified"`
	Rejected        bool   `bson:"rejected" json:"rejected"`
	VerifiedAt      int64  `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	VerifiedBy      string `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	RejectionReason string `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	Remark          string `bson:"remark,omitempty" json:"remark,omitempty"`
}

// Partner is a service provider as normalized by the partner repository.
type Partner struct {
	ID                  string              `bson:"id" json:"id"`
	PersonalDetails     PersonalDetails     `bson:"personalDetails" json:"personalDetails"`
	Email               string              `bson:"email" json:"email"`
	LocationDetails     LocationDetails     `bson:"locationDetails" json:"locationDetails"`
	Services            []string            `bson:"services" json:"services"`
	SubServices         map[string][]string `bson:"subServices" json:"subServices"`
	VerificationDetails VerificationDetails `bson:"verificationDetails" json:"verificationDetails"`
	CreatedAt           int64               `bson:"createdAt" json:"createdAt"`
}

// DeriveVerificationStatus is the single source of truth for a partner's
// verification state. Any stored status field is ignored.
func DeriveVerificationStatus(v VerificationDetails) string {
	switch {
	case v.Verified:
		return VerificationVerified
	case v.Rejected:
		return VerificationRejected
	default:
		return VerificationPending
	}
}

func (p Partner) VerificationStatus() string {
	return DeriveVerificationStatus(p.VerificationDetails)
}

// PartnerView is a partner with its derived status, as returned to clients.
type PartnerView struct {
	Partner
	VerificationStatus string `json:"verificationStatus"`
	Status             string `json:"status"`
}

func NewPartnerView(p Partner) PartnerView {
	status := p.VerificationStatus()
	return PartnerView{Partner: p, VerificationStatus: status, Status: status}
}
