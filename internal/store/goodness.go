package store

import (
	"context"
	"errors"

	"github.com/student-council/goodness-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GoodnessFilter narrows ListGoodnessRecords. Nil fields match everything.
type GoodnessFilter struct {
	UserID *uint
	Status *string
}

// ListGoodnessRecords returns records newest-first with the owning user
// preloaded for display. A record whose user row is missing keeps a nil User;
// the join never fails the listing.
func (s *Store) ListGoodnessRecords(ctx context.Context, filter GoodnessFilter) ([]models.GoodnessRecord, error) {
	query := s.db.WithContext(ctx).Preload("User").Order("created_at DESC, id DESC")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var records []models.GoodnessRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) GetGoodnessRecord(ctx context.Context, id uint) (*models.GoodnessRecord, error) {
	var record models.GoodnessRecord
	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *Store) CreateGoodnessRecord(ctx context.Context, record *models.GoodnessRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

// ReviewGoodnessRecord finalizes a pending record and, on approval, credits
// the owner's point balance. The record update and the point credit run in
// one transaction with the rows locked for update, so two concurrent
// approvals for the same user cannot lose a credit. A record that has already
// been decided returns ErrAlreadyReviewed; there is no re-review path.
func (s *Store) ReviewGoodnessRecord(ctx context.Context, id uint, decision string, pointsAwarded int, feedback *string) (*models.GoodnessRecord, error) {
	var record models.GoodnessRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if record.Status != models.StatusPending {
			return ErrAlreadyReviewed
		}

		record.Status = decision
		if decision == models.StatusApproved {
			record.PointsAwarded = pointsAwarded
		} else {
			record.PointsAwarded = 0
		}
		record.AdminFeedback = feedback

		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		if decision == models.StatusApproved && record.PointsAwarded > 0 {
			var user models.User
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, record.UserID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Record keeps its award; there is no balance to credit.
				return nil
			}
			if err != nil {
				return err
			}

			user.Points += record.PointsAwarded
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}
