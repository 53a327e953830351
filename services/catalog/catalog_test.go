package catalog

import (
	"context"
	"testing"

	"servit/models"
	"servit/utils"
)

func TestCreateCategoryIsIdempotentPerKind(t *testing.T) {
	svc, categories, _ := newTestCatalog()
	ctx := context.Background()

	first, err := svc.CreateCategory(ctx, CategoryInput{Category: "men"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if first.ID != "menservices" || !first.IsActive {
		t.Fatalf("unexpected category %+v", first)
	}

	second, err := svc.CreateCategory(ctx, CategoryInput{Category: "men", IsActive: boolPtr(false)})
	if err != nil {
		t.Fatalf("CreateCategory again: %v", err)
	}
	if len(categories.docs) != 1 {
		t.Fatalf("expected one category document, got %d", len(categories.docs))
	}
	if second.ID != "menservices" || second.IsActive {
		t.Fatalf("expected second call to update the same document, got %+v", second)
	}

	women, err := svc.CreateCategory(ctx, CategoryInput{Category: "women"})
	if err != nil || women.ID != "womenservices" {
		t.Fatalf("expected womenservices, got %+v (%v)", women, err)
	}

	if _, err := svc.CreateCategory(ctx, CategoryInput{Category: "kids"}); utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error for unknown kind, got %v", err)
	}
}

func TestUpdateCategory(t *testing.T) {
	svc, _, _ := newTestCatalog()
	ctx := context.Background()
	if _, err := svc.CreateCategory(ctx, CategoryInput{Category: "women"}); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	updated, err := svc.UpdateCategory(ctx, "womenservices", CategoryPatch{IsActive: boolPtr(false)})
	if err != nil || updated.IsActive {
		t.Fatalf("expected inactive category, got %+v (%v)", updated, err)
	}

	unchanged, err := svc.UpdateCategory(ctx, "womenservices", CategoryPatch{})
	if err != nil || unchanged.ID != "womenservices" {
		t.Fatalf("empty patch should return the category, got %+v (%v)", unchanged, err)
	}

	if _, err := svc.UpdateCategory(ctx, "nope", CategoryPatch{IsActive: boolPtr(true)}); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.UpdateCategory(ctx, "nope", CategoryPatch{}); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("expected not found for empty patch, got %v", err)
	}
	if _, err := svc.UpdateCategory(ctx, "womenservices", CategoryPatch{Category: strPtr("kids")}); utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteCategoryKeepsServices(t *testing.T) {
	svc, categories, services := newTestCatalog()
	ctx := context.Background()
	if _, err := svc.CreateCategory(ctx, CategoryInput{Category: "men"}); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if _, err := svc.CreateService(ctx, "menservices", ServiceInput{Name: "Haircut"}); err != nil {
		t.Fatalf("CreateService: %v", err)
	}

	if err := svc.DeleteCategory(ctx, "menservices"); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if len(categories.docs) != 0 || len(services.docs) != 1 {
		t.Fatalf("expected category removed and service kept, got %d/%d", len(categories.docs), len(services.docs))
	}
}

func TestCreateService(t *testing.T) {
	svc, _, _ := newTestCatalog()
	ctx := context.Background()

	service, err := svc.CreateService(ctx, "menservices", ServiceInput{
		Name: "  Haircut ",
		SubServices: []SubServiceInput{
			{Name: "Classic", MinPrice: 200},
			{Name: "Fade", Unit: models.UnitPerHour, MinPrice: 300, MaxPrice: floatPtr(500)},
		},
	})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if service.ID != "Haircut" || service.Name != "Haircut" || !service.IsActive {
		t.Fatalf("unexpected service %+v", service)
	}
	classic := service.SubServices[0]
	if classic.ID != "sub-1" || classic.Unit != models.UnitPerService || classic.MaxPrice != 200 {
		t.Fatalf("expected defaults on sub-service, got %+v", classic)
	}
	if fade := service.SubServices[1]; fade.ID != "sub-2" || fade.MaxPrice != 500 {
		t.Fatalf("unexpected sub-service %+v", fade)
	}

	if _, err := svc.CreateService(ctx, "menservices", ServiceInput{Name: "Haircut"}); utils.KindOf(err) != utils.KindConflict {
		t.Fatalf("expected conflict on duplicate service, got %v", err)
	}
	if _, err := svc.CreateService(ctx, "womenservices", ServiceInput{Name: "Haircut"}); err != nil {
		t.Fatalf("same name in another category should succeed: %v", err)
	}
}

func TestCreateServiceRejectsInvalidSubServices(t *testing.T) {
	svc, _, services := newTestCatalog()
	ctx := context.Background()

	cases := []struct {
		name string
		subs []SubServiceInput
		kind utils.ErrorKind
	}{
		{"bad unit", []SubServiceInput{{Name: "a", Unit: "per week"}}, utils.KindValidation},
		{"negative min", []SubServiceInput{{Name: "a", MinPrice: -1}}, utils.KindValidation},
		{"max below min", []SubServiceInput{{Name: "a", MinPrice: 10, MaxPrice: floatPtr(5)}}, utils.KindValidation},
		{"blank name", []SubServiceInput{{Name: "  "}}, utils.KindValidation},
		{"duplicate names", []SubServiceInput{{Name: "Trim"}, {Name: " trim"}}, utils.KindConflict},
	}
	for _, tc := range cases {
		_, err := svc.CreateService(ctx, "menservices", ServiceInput{Name: "S-" + tc.name, SubServices: tc.subs})
		if utils.KindOf(err) != tc.kind {
			t.Errorf("%s: expected kind %d, got %v", tc.name, tc.kind, err)
		}
	}
	if len(services.docs) != 0 {
		t.Fatalf("expected no services stored, got %d", len(services.docs))
	}
}

func TestUpdateServiceKeepsSubServiceIDs(t *testing.T) {
	svc, _, _ := newTestCatalog()
	ctx := context.Background()
	created, err := svc.CreateService(ctx, "menservices", ServiceInput{
		Name:        "Shave",
		SubServices: []SubServiceInput{{Name: "Wet", MinPrice: 100}},
	})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	existing := created.SubServices[0].ID

	updated, err := svc.UpdateService(ctx, "menservices", "Shave", ServicePatch{
		Description: strPtr("Clean shave"),
		SubServices: []SubServiceInput{{ID: existing, Name: "Wet", MinPrice: 120}, {Name: "Dry", MinPrice: 80}},
	})
	if err != nil {
		t.Fatalf("UpdateService: %v", err)
	}
	if updated.Description != "Clean shave" || len(updated.SubServices) != 2 {
		t.Fatalf("unexpected service %+v", updated)
	}
	if updated.SubServices[0].ID != existing || updated.SubServices[0].MinPrice != 120 {
		t.Fatalf("expected existing id kept, got %+v", updated.SubServices[0])
	}
	if updated.SubServices[1].ID == "" || updated.SubServices[1].ID == existing {
		t.Fatalf("expected a fresh id for the new entry, got %q", updated.SubServices[1].ID)
	}

	if _, err := svc.UpdateService(ctx, "menservices", "missing", ServicePatch{Icon: strPtr("x")}); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.UpdateService(ctx, "menservices", "missing", ServicePatch{}); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("expected not found for empty patch, got %v", err)
	}
	if err := svc.DeleteService(ctx, "menservices", "missing"); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("expected not found on delete, got %v", err)
	}
}

func TestAddSubServiceRejectsDuplicateNames(t *testing.T) {
	svc, _, services := newTestCatalog()
	ctx := context.Background()
	if _, err := svc.CreateService(ctx, "menservices", ServiceInput{
		Name:        "Haircut",
		SubServices: []SubServiceInput{{Name: "haircut", MinPrice: 100}},
	}); err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	writes := services.writes

	_, err := svc.AddSubService(ctx, "menservices", "Haircut", SubServiceInput{Name: " Haircut"})
	if utils.KindOf(err) != utils.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	stored := services.docs[serviceKey("menservices", "Haircut")]
	if len(stored.SubServices) != 1 || services.writes != writes {
		t.Fatalf("expected sub-services unchanged, got %+v", stored.SubServices)
	}

	added, err := svc.AddSubService(ctx, "menservices", "Haircut", SubServiceInput{Name: "Beard trim", MinPrice: 50})
	if err != nil {
		t.Fatalf("AddSubService: %v", err)
	}
	stored = services.docs[serviceKey("menservices", "Haircut")]
	if len(stored.SubServices) != 2 || stored.SubServices[1].ID != added.ID {
		t.Fatalf("expected appended sub-service, got %+v", stored.SubServices)
	}

	if _, err := svc.AddSubService(ctx, "menservices", "missing", SubServiceInput{Name: "x"}); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSubServiceLookupByLegacyName(t *testing.T) {
	svc, _, services := newTestCatalog()
	ctx := context.Background()
	services.docs[serviceKey("womenservices", "Facial")] = models.Service{
		ID:         "Facial",
		CategoryID: "womenservices",
		Name:       "Facial",
		SubServices: []models.SubService{
			{Name: "Gold", Unit: models.UnitPerService, MinPrice: 500, MaxPrice: 800},
			{ID: "abc", Name: "Fruit", Unit: models.UnitPerService, MinPrice: 300, MaxPrice: 300},
		},
	}

	updated, err := svc.UpdateSubService(ctx, "womenservices", "Facial", "Gold", SubServicePatch{MaxPrice: floatPtr(900)})
	if err != nil {
		t.Fatalf("UpdateSubService: %v", err)
	}
	if updated.MaxPrice != 900 || updated.Name != "Gold" {
		t.Fatalf("unexpected sub-service %+v", updated)
	}

	if _, err := svc.UpdateSubService(ctx, "womenservices", "Facial", "abc", SubServicePatch{Name: strPtr("gold")}); utils.KindOf(err) != utils.KindConflict {
		t.Fatalf("expected rename conflict, got %v", err)
	}
	if _, err := svc.UpdateSubService(ctx, "womenservices", "Facial", "abc", SubServicePatch{MinPrice: floatPtr(400)}); utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("expected max below min to fail, got %v", err)
	}
	if _, err := svc.UpdateSubService(ctx, "womenservices", "Facial", "zzz", SubServicePatch{}); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := svc.DeleteSubService(ctx, "womenservices", "Facial", "Gold"); err != nil {
		t.Fatalf("DeleteSubService: %v", err)
	}
	stored := services.docs[serviceKey("womenservices", "Facial")]
	if len(stored.SubServices) != 1 || stored.SubServices[0].ID != "abc" {
		t.Fatalf("expected only Fruit left, got %+v", stored.SubServices)
	}
	if err := svc.DeleteSubService(ctx, "womenservices", "Facial", "Gold"); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestGetServiceCacheIsInvalidatedOnWrite(t *testing.T) {
	svc, _, services := newTestCatalog()
	ctx := context.Background()
	if _, err := svc.CreateService(ctx, "menservices", ServiceInput{Name: "Massage"}); err != nil {
		t.Fatalf("CreateService: %v", err)
	}

	if _, err := svc.GetService(ctx, "menservices", "Massage"); err != nil {
		t.Fatalf("GetService: %v", err)
	}

	// A write behind the service's back is not visible while cached.
	stored := services.docs[serviceKey("menservices", "Massage")]
	stored.Description = "direct"
	services.docs[serviceKey("menservices", "Massage")] = stored
	cached, err := svc.GetService(ctx, "menservices", "Massage")
	if err != nil || cached.Description != "" {
		t.Fatalf("expected cached copy, got %+v (%v)", cached, err)
	}

	if _, err := svc.AddSubService(ctx, "menservices", "Massage", SubServiceInput{Name: "Head", MinPrice: 10}); err != nil {
		t.Fatalf("AddSubService: %v", err)
	}
	fresh, err := svc.GetService(ctx, "menservices", "Massage")
	if err != nil {
		t.Fatalf("GetService: %v", err)
	}
	if fresh.Description != "direct" || len(fresh.SubServices) != 1 {
		t.Fatalf("expected fresh read after write, got %+v", fresh)
	}

	if err := svc.DeleteService(ctx, "menservices", "Massage"); err != nil {
		t.Fatalf("DeleteService: %v", err)
	}
	if _, err := svc.GetService(ctx, "menservices", "Massage"); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
