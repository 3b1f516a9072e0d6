package store

import (
	"context"
	"errors"

	"github.com/student-council/goodness-api/internal/models"
	"gorm.io/gorm"
)

// UserUpdate carries the fields an admin may change on a user. Nil fields are
// left untouched. Points appears here only for explicit admin overrides; the
// review workflow credits points on its own.
type UserUpdate struct {
	Username      *string
	Role          *string
	FirstName     *string
	LastName      *string
	ClassLevel    *string
	StudentNumber *int
	Points        *int
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Store) UpdateUser(ctx context.Context, id uint, updates UserUpdate) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if updates.Username != nil {
			user.Username = *updates.Username
		}
		if updates.Role != nil {
			user.Role = *updates.Role
		}
		if updates.FirstName != nil {
			user.FirstName = *updates.FirstName
		}
		if updates.LastName != nil {
			user.LastName = *updates.LastName
		}
		if updates.ClassLevel != nil {
			user.ClassLevel = updates.ClassLevel
		}
		if updates.StudentNumber != nil {
			user.StudentNumber = updates.StudentNumber
		}
		if updates.Points != nil {
			user.Points = *updates.Points
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
