package store

import (
	"context"
	"errors"
	"testing"

	"github.com/student-council/goodness-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.User{}, &models.Announcement{}, &models.GoodnessRecord{})
	return New(db), db
}

func seedStudent(t *testing.T, db *gorm.DB, username string, points int) *models.User {
	t.Helper()

	user := models.User{
		Username:  username,
		Password:  "x.y",
		Role:      models.RoleStudent,
		FirstName: "Test",
		LastName:  "Student",
		Points:    points,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

func seedRecord(t *testing.T, db *gorm.DB, userID uint) *models.GoodnessRecord {
	t.Helper()

	record := models.GoodnessRecord{
		UserID:        userID,
		Description:   "helped clean",
		DatePerformed: "2024-01-01",
		Status:        models.StatusPending,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to create record: %v", err)
	}
	return &record
}

func TestReviewGoodnessRecordApprove(t *testing.T) {
	store, db := newTestStore(t)
	user := seedStudent(t, db, "somchai", 5)
	record := seedRecord(t, db, user.ID)

	feedback := "well done"
	updated, err := store.ReviewGoodnessRecord(context.Background(), record.ID, models.StatusApproved, 10, &feedback)
	if err != nil {
		t.Fatalf("ReviewGoodnessRecord returned error: %v", err)
	}

	if updated.Status != models.StatusApproved {
		t.Errorf("expected status approved, got %s", updated.Status)
	}
	if updated.PointsAwarded != 10 {
		t.Errorf("expected 10 points awarded, got %d", updated.PointsAwarded)
	}
	if updated.AdminFeedback == nil || *updated.AdminFeedback != "well done" {
		t.Error("expected feedback to be recorded")
	}

	// Points credited on top of the previous balance
	var owner models.User
	db.First(&owner, user.ID)
	if owner.Points != 15 {
		t.Errorf("expected owner to have 15 points, got %d", owner.Points)
	}
}

func TestReviewGoodnessRecordReject(t *testing.T) {
	store, db := newTestStore(t)
	user := seedStudent(t, db, "somchai", 5)
	record := seedRecord(t, db, user.ID)

	updated, err := store.ReviewGoodnessRecord(context.Background(), record.ID, models.StatusRejected, 10, nil)
	if err != nil {
		t.Fatalf("ReviewGoodnessRecord returned error: %v", err)
	}

	if updated.Status != models.StatusRejected {
		t.Errorf("expected status rejected, got %s", updated.Status)
	}
	if updated.PointsAwarded != 0 {
		t.Errorf("expected rejection to zero pointsAwarded, got %d", updated.PointsAwarded)
	}

	// A rejection never changes any balance
	var owner models.User
	db.First(&owner, user.ID)
	if owner.Points != 5 {
		t.Errorf("expected owner to keep 5 points, got %d", owner.Points)
	}
}

func TestReviewGoodnessRecordNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.ReviewGoodnessRecord(context.Background(), 9999, models.StatusApproved, 10, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReviewGoodnessRecordOnlyOnce(t *testing.T) {
	store, db := newTestStore(t)
	user := seedStudent(t, db, "somchai", 0)
	record := seedRecord(t, db, user.ID)

	if _, err := store.ReviewGoodnessRecord(context.Background(), record.ID, models.StatusApproved, 10, nil); err != nil {
		t.Fatalf("first review returned error: %v", err)
	}

	_, err := store.ReviewGoodnessRecord(context.Background(), record.ID, models.StatusApproved, 10, nil)
	if !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}

	// No double credit
	var owner models.User
	db.First(&owner, user.ID)
	if owner.Points != 10 {
		t.Errorf("expected owner to have 10 points, got %d", owner.Points)
	}
}

func TestReviewGoodnessRecordOrphanedOwner(t *testing.T) {
	store, db := newTestStore(t)

	record := models.GoodnessRecord{
		UserID:        4242, // no such user
		Description:   "helped clean",
		DatePerformed: "2024-01-01",
		Status:        models.StatusPending,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to create record: %v", err)
	}

	updated, err := store.ReviewGoodnessRecord(context.Background(), record.ID, models.StatusApproved, 10, nil)
	if err != nil {
		t.Fatalf("expected review of orphaned record to succeed, got %v", err)
	}
	if updated.Status != models.StatusApproved || updated.PointsAwarded != 10 {
		t.Error("expected record to keep its decision and award")
	}
}

func TestListGoodnessRecordsFilterAndJoin(t *testing.T) {
	store, db := newTestStore(t)
	alice := seedStudent(t, db, "alice", 0)
	bob := seedStudent(t, db, "bob", 0)

	first := seedRecord(t, db, alice.ID)
	seedRecord(t, db, bob.ID)
	third := seedRecord(t, db, alice.ID)

	pending := models.StatusPending
	records, err := store.ListGoodnessRecords(context.Background(), GoodnessFilter{UserID: &alice.ID, Status: &pending})
	if err != nil {
		t.Fatalf("ListGoodnessRecords returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records for alice, got %d", len(records))
	}
	// Newest first
	if records[0].ID != third.ID || records[1].ID != first.ID {
		t.Errorf("expected newest-first ordering, got %d then %d", records[0].ID, records[1].ID)
	}
	for _, record := range records {
		if record.User == nil || record.User.Username != "alice" {
			t.Error("expected owning user to be joined in")
		}
	}
}

func TestListGoodnessRecordsMissingUserOmitted(t *testing.T) {
	store, db := newTestStore(t)

	record := models.GoodnessRecord{
		UserID:        4242,
		Description:   "helped clean",
		DatePerformed: "2024-01-01",
		Status:        models.StatusPending,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to create record: %v", err)
	}

	records, err := store.ListGoodnessRecords(context.Background(), GoodnessFilter{})
	if err != nil {
		t.Fatalf("ListGoodnessRecords returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].User != nil {
		t.Error("expected missing owner to be omitted, not faulted")
	}
}
