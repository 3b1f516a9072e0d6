package store

import (
	"context"
	"errors"

	"github.com/student-council/goodness-api/internal/models"
	"gorm.io/gorm"
)

type AnnouncementUpdate struct {
	Title    *string
	Content  *string
	ImageURL *string
}

func (s *Store) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

func (s *Store) GetAnnouncement(ctx context.Context, id uint) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := s.db.WithContext(ctx).First(&announcement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &announcement, nil
}

func (s *Store) CreateAnnouncement(ctx context.Context, announcement *models.Announcement) error {
	return s.db.WithContext(ctx).Create(announcement).Error
}

func (s *Store) UpdateAnnouncement(ctx context.Context, id uint, updates AnnouncementUpdate) (*models.Announcement, error) {
	var announcement models.Announcement
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&announcement, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if updates.Title != nil {
			announcement.Title = *updates.Title
		}
		if updates.Content != nil {
			announcement.Content = *updates.Content
		}
		if updates.ImageURL != nil {
			announcement.ImageURL = updates.ImageURL
		}

		return tx.Save(&announcement).Error
	})
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// DeleteAnnouncement hard-deletes the row. Deleting an id that does not exist
// is not an error.
func (s *Store) DeleteAnnouncement(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Announcement{}, id).Error
}
