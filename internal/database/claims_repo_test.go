package database

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"lecturer-claims/internal/claims"
	"lecturer-claims/internal/models"
)

func testRepo(t *testing.T) *ClaimRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Role{}, &models.User{}, &models.Claim{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewClaimRepository(db)
}

func testClaim(userID uint, status models.ClaimStatus) *models.Claim {
	return &models.Claim{
		LecturerName: "J. Smith",
		HoursWorked:  decimal.RequireFromString("100"),
		HourlyRate:   decimal.RequireFromString("150"),
		DocumentPath: "ref.pdf",
		UserID:       userID,
		Status:       status,
	}
}

func TestCreateAssignsID(t *testing.T) {
	repo := testRepo(t)

	c1 := testClaim(1, models.StatusPending)
	if err := repo.Create(c1); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c1.ID == 0 {
		t.Fatal("Create did not assign an id")
	}

	c2 := testClaim(1, models.StatusPending)
	if err := repo.Create(c2); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c2.ID == c1.ID {
		t.Errorf("two claims share id %d", c1.ID)
	}
}

func TestFindByID(t *testing.T) {
	repo := testRepo(t)

	c := testClaim(1, models.StatusPending)
	if err := repo.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindByID(c.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.LecturerName != c.LecturerName || got.UserID != c.UserID {
		t.Errorf("FindByID returned %+v, want %+v", got, c)
	}
	if !got.HoursWorked.Equal(c.HoursWorked) || !got.HourlyRate.Equal(c.HourlyRate) {
		t.Errorf("figures changed across storage: %s/%s", got.HoursWorked, got.HourlyRate)
	}

	if _, err := repo.FindByID(999); !errors.Is(err, claims.ErrNotFound) {
		t.Errorf("FindByID(999) = %v, want ErrNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	repo := testRepo(t)

	c := testClaim(1, models.StatusPending)
	if err := repo.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	c.Status = models.StatusApproved
	if err := repo.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.FindByID(c.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Status != models.StatusApproved {
		t.Errorf("status = %q, want approved", got.Status)
	}

	missing := testClaim(1, models.StatusPending)
	missing.ID = 999
	if err := repo.Update(missing); !errors.Is(err, claims.ErrNotFound) {
		t.Errorf("Update missing = %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	repo := testRepo(t)

	c := testClaim(1, models.StatusPending)
	if err := repo.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(c.ID); !errors.Is(err, claims.ErrNotFound) {
		t.Errorf("FindByID after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(c.ID); !errors.Is(err, claims.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestListQueries(t *testing.T) {
	repo := testRepo(t)

	seed := []*models.Claim{
		testClaim(1, models.StatusPending),
		testClaim(2, models.StatusApproved),
		testClaim(1, models.StatusApproved),
		testClaim(2, models.StatusDeclined),
	}
	for _, c := range seed {
		if err := repo.Create(c); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	byUser, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("ListByUser(1) returned %d claims, want 2", len(byUser))
	}
	for _, c := range byUser {
		if c.UserID != 1 {
			t.Errorf("ListByUser(1) returned claim owned by %d", c.UserID)
		}
	}

	approved, err := repo.ListByStatus(models.StatusApproved)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(approved) != 2 {
		t.Errorf("ListByStatus(approved) returned %d claims, want 2", len(approved))
	}

	all, err := repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != len(seed) {
		t.Errorf("ListAll returned %d claims, want %d", len(all), len(seed))
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Errorf("ListAll not in creation order at index %d", i)
		}
	}
}

func TestSeedRolesIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Role{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	SeedRoles(db)
	SeedRoles(db)

	var count int64
	db.Model(&models.Role{}).Count(&count)
	if count != 4 {
		t.Errorf("role count after double seed = %d, want 4", count)
	}

	var names []string
	db.Model(&models.Role{}).Order("name asc").Pluck("name", &names)
	want := map[string]bool{
		models.RoleLecturer:    true,
		models.RoleCoordinator: true,
		models.RoleManager:     true,
		models.RoleHR:          true,
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected role %q", n)
		}
	}
}
