package partner

import (
	"context"
	"fmt"
	"testing"
	"time"

	"servit/database"
	"servit/models"
	"servit/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// recordingRepo applies dotted $set/$unset paths to the partners it holds,
// covering the verificationDetails fields this package writes.
type recordingRepo struct {
	partners  map[string]*models.Partner
	stored    map[string]string
	lastSet   bson.M
	lastUnset []string
}

func newRecordingRepo(partners ...models.Partner) *recordingRepo {
	r := &recordingRepo{partners: map[string]*models.Partner{}, stored: map[string]string{}}
	for i := range partners {
		p := partners[i]
		r.partners[p.ID] = &p
	}
	return r
}

func (r *recordingRepo) GetAll(context.Context) ([]models.Partner, error) {
	var out []models.Partner
	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		if p, ok := r.partners[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *recordingRepo) GetByID(_ context.Context, id string) (*models.Partner, error) {
	p, ok := r.partners[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *recordingRepo) UpdateFields(_ context.Context, id string, set bson.M, unset []string) error {
	p, ok := r.partners[id]
	if !ok {
		return fmt.Errorf("partner %s: %w", id, database.ErrNotFound)
	}
	r.lastSet, r.lastUnset = set, unset
	v := &p.VerificationDetails
	for k, val := range set {
		switch k {
		case "verificationDetails.verified":
			v.Verified = val.(bool)
		case "verificationDetails.rejected":
			v.Rejected = val.(bool)
		case "verificationDetails.verifiedAt":
			v.VerifiedAt = val.(int64)
		case "verificationDetails.verifiedBy":
			v.VerifiedBy = val.(string)
		case "verificationDetails.rejectionReason":
			v.RejectionReason = val.(string)
		case "verificationDetails.remark":
			v.Remark = val.(string)
		case "status":
			r.stored[id] = val.(string)
		}
	}
	for _, k := range unset {
		switch k {
		case "verificationDetails.verifiedAt":
			v.VerifiedAt = 0
		case "verificationDetails.verifiedBy":
			v.VerifiedBy = ""
		case "verificationDetails.rejectionReason":
			v.RejectionReason = ""
		}
	}
	return nil
}

func fixedClock() time.Time {
	return time.UnixMilli(1_700_000_000_000)
}

func TestListPartnersFiltersByDerivedStatus(t *testing.T) {
	svc := &DefaultPartnerService{Repo: newRecordingRepo(
		models.Partner{ID: "p1"},
		models.Partner{ID: "p2", VerificationDetails: models.VerificationDetails{Verified: true}},
		models.Partner{ID: "p3", VerificationDetails: models.VerificationDetails{Rejected: true}},
		models.Partner{ID: "p4", VerificationDetails: models.VerificationDetails{Verified: true, Rejected: true}},
	)}
	ctx := context.Background()

	cases := map[string][]string{
		"":                          {"p1", "p2", "p3", "p4"},
		StatusAll:                   {"p1", "p2", "p3", "p4"},
		models.VerificationPending:  {"p1"},
		models.VerificationVerified: {"p2", "p4"},
		models.VerificationRejected: {"p3"},
	}
	for status, want := range cases {
		views, err := svc.ListPartners(ctx, status)
		if err != nil {
			t.Fatalf("ListPartners(%q): %v", status, err)
		}
		var got []string
		for _, v := range views {
			got = append(got, v.ID)
		}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Errorf("ListPartners(%q) = %v, want %v", status, got, want)
		}
	}

	if _, err := svc.ListPartners(ctx, "approved"); utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVerifyClearsRejection(t *testing.T) {
	repo := newRecordingRepo(models.Partner{ID: "p1", VerificationDetails: models.VerificationDetails{
		Rejected: true, RejectionReason: "blurry id",
	}})
	svc := &DefaultPartnerService{Repo: repo, Now: fixedClock}

	view, err := svc.Verify(context.Background(), "p1", "admin-1", "docs ok")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	v := view.VerificationDetails
	if !v.Verified || v.Rejected || v.RejectionReason != "" {
		t.Fatalf("unexpected verification details %+v", v)
	}
	if v.VerifiedBy != "admin-1" || v.VerifiedAt != fixedClock().UnixMilli() || v.Remark != "docs ok" {
		t.Fatalf("expected audit fields, got %+v", v)
	}
	if view.VerificationStatus != models.VerificationVerified || repo.stored["p1"] != models.VerificationVerified {
		t.Fatalf("expected verified status, got %q / stored %q", view.VerificationStatus, repo.stored["p1"])
	}
}

func TestVerifyWithoutRemarkKeepsExisting(t *testing.T) {
	repo := newRecordingRepo(models.Partner{ID: "p1", VerificationDetails: models.VerificationDetails{Remark: "earlier"}})
	svc := &DefaultPartnerService{Repo: repo, Now: fixedClock}

	view, err := svc.Verify(context.Background(), "p1", "admin-1", "")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if _, ok := repo.lastSet["verificationDetails.remark"]; ok || view.VerificationDetails.Remark != "earlier" {
		t.Fatalf("expected remark untouched, got %+v", view.VerificationDetails)
	}
}

func TestRejectClearsVerification(t *testing.T) {
	repo := newRecordingRepo(models.Partner{ID: "p1", VerificationDetails: models.VerificationDetails{
		Verified: true, VerifiedAt: 5, VerifiedBy: "admin-0",
	}})
	svc := &DefaultPartnerService{Repo: repo, Now: fixedClock}
	ctx := context.Background()

	if _, err := svc.Reject(ctx, "p1", "   ", ""); utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error for blank reason, got %v", err)
	}
	if repo.lastSet != nil {
		t.Fatalf("expected no write for a rejected request")
	}

	view, err := svc.Reject(ctx, "p1", " expired licence ", "call back")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	v := view.VerificationDetails
	if v.Verified || !v.Rejected || v.RejectionReason != "expired licence" || v.Remark != "call back" {
		t.Fatalf("unexpected verification details %+v", v)
	}
	if v.VerifiedAt != 0 || v.VerifiedBy != "" {
		t.Fatalf("expected verification audit cleared, got %+v", v)
	}
	if view.Status != models.VerificationRejected {
		t.Fatalf("expected rejected, got %q", view.Status)
	}
}

func TestPartnerNotFound(t *testing.T) {
	svc := &DefaultPartnerService{Repo: newRecordingRepo(), Now: fixedClock}
	ctx := context.Background()

	if _, err := svc.GetPartner(ctx, "ghost"); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("GetPartner: expected not found, got %v", err)
	}
	if _, err := svc.Verify(ctx, "ghost", "a", ""); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("Verify: expected not found, got %v", err)
	}
	if _, err := svc.Reject(ctx, "ghost", "reason", ""); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("Reject: expected not found, got %v", err)
	}
}
