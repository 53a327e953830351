package models

import "testing"

func TestDeriveVerificationStatus(t *testing.T) {
	cases := []struct {
		name    string
		details VerificationDetails
		want    string
	}{
		{"fresh", VerificationDetails{}, VerificationPending},
		{"verified", VerificationDetails{Verified: true}, VerificationVerified},
		{"rejected", VerificationDetails{Rejected: true}, VerificationRejected},
		{"both flags", VerificationDetails{Verified: true, Rejected: true}, VerificationVerified},
	}
	for _, tc := range cases {
		if got := DeriveVerificationStatus(tc.details); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNewPartnerViewMirrorsDerivedStatus(t *testing.T) {
	view := NewPartnerView(Partner{ID: "p1", VerificationDetails: VerificationDetails{Rejected: true}})
	if view.VerificationStatus != VerificationRejected || view.Status != VerificationRejected {
		t.Fatalf("unexpected view statuses %q/%q", view.VerificationStatus, view.Status)
	}
}
