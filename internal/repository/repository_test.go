package repository

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"hrms-backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Attendance{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUserRepositoryUniqueEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	first := &model.User{Email: "hr@ssspl.com", HashedPassword: "x", Role: model.RoleHR}
	if err := repo.Create(first); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := &model.User{Email: "hr@ssspl.com", HashedPassword: "y", Role: model.RoleEmployee}
	if err := repo.Create(dup); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	if _, err := repo.GetByEmail("nobody@ssspl.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	created := &model.User{Email: "hr@ssspl.com", HashedPassword: "x", Role: model.RoleHR}
	if err := repo.Create(created); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.GetByEmail("hr@ssspl.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.Role != model.RoleHR {
		t.Fatalf("unexpected role: %s", got.Role)
	}
}

func TestAttendanceUniqueUserDate(t *testing.T) {
	repo := NewAttendanceRepository(newTestDB(t))
	now := time.Now()

	first := &model.Attendance{UserID: 1, Date: "2026-08-29", CheckInTime: &now, Status: model.StatusCheckedIn}
	if err := repo.Create(first); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A second insert for the same (user, date) is the losing side of the
	// concurrent check-in race; the index must reject it.
	second := &model.Attendance{UserID: 1, Date: "2026-08-29", CheckInTime: &now, Status: model.StatusCheckedIn}
	if err := repo.Create(second); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// Other users and other dates are unaffected.
	if err := repo.Create(&model.Attendance{UserID: 2, Date: "2026-08-29", Status: model.StatusCheckedIn}); err != nil {
		t.Fatalf("other user: %v", err)
	}
	if err := repo.Create(&model.Attendance{UserID: 1, Date: "2026-08-30", Status: model.StatusCheckedIn}); err != nil {
		t.Fatalf("other date: %v", err)
	}
}

func TestAttendanceListOrderingAndFilters(t *testing.T) {
	repo := NewAttendanceRepository(newTestDB(t))

	for _, date := range []string{"2026-08-29", "2026-08-27", "2026-08-28"} {
		status := model.StatusCheckedOut
		if date == "2026-08-29" {
			status = model.StatusCheckedIn
		}
		if err := repo.Create(&model.Attendance{UserID: 1, Date: date, Status: status}); err != nil {
			t.Fatalf("create %s: %v", date, err)
		}
	}
	if err := repo.Create(&model.Attendance{UserID: 2, Date: "2026-08-27", Status: model.StatusCheckedOut}); err != nil {
		t.Fatalf("create other user: %v", err)
	}

	list, err := repo.ListByUser(1, ListQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 records, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Date > list[i].Date {
			t.Fatalf("records not in ascending date order: %s > %s", list[i-1].Date, list[i].Date)
		}
	}

	ranged, err := repo.ListByUser(1, ListQuery{From: "2026-08-28", To: "2026-08-29"})
	if err != nil {
		t.Fatalf("ranged list: %v", err)
	}
	if len(ranged) != 2 {
		t.Fatalf("expected 2 records in range, got %d", len(ranged))
	}

	open, err := repo.ListByUser(1, ListQuery{Status: model.StatusCheckedIn})
	if err != nil {
		t.Fatalf("status list: %v", err)
	}
	if len(open) != 1 || open[0].Date != "2026-08-29" {
		t.Fatalf("unexpected status filter result: %+v", open)
	}
}

func TestAttendancePaging(t *testing.T) {
	repo := NewAttendanceRepository(newTestDB(t))

	dates := []string{"2026-08-24", "2026-08-25", "2026-08-26", "2026-08-27", "2026-08-28"}
	for _, date := range dates {
		if err := repo.Create(&model.Attendance{UserID: 1, Date: date, Status: model.StatusCheckedOut}); err != nil {
			t.Fatalf("create %s: %v", date, err)
		}
	}

	total, err := repo.CountByUser(1, ListQuery{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}

	page, err := repo.ListByUser(1, ListQuery{Offset: 2, Limit: 2})
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if len(page) != 2 || page[0].Date != "2026-08-26" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestAttendanceGetAndUpdate(t *testing.T) {
	repo := NewAttendanceRepository(newTestDB(t))
	in := time.Now()

	if _, err := repo.GetByUserAndDate(1, "2026-08-29"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	att := &model.Attendance{UserID: 1, Date: "2026-08-29", CheckInTime: &in, Status: model.StatusCheckedIn}
	if err := repo.Create(att); err != nil {
		t.Fatalf("create: %v", err)
	}

	out := in.Add(8 * time.Hour)
	att.CheckOutTime = &out
	att.Status = model.StatusCheckedOut
	if err := repo.Update(att); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByUserAndDate(1, "2026-08-29")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != model.StatusCheckedOut || got.CheckOutTime == nil {
		t.Fatalf("update not persisted: %+v", got)
	}
}
