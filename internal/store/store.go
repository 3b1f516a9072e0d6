// Package store is the typed persistence adapter over the three entities.
// Absent rows surface as ErrNotFound rather than driver errors so the API
// layer can map them to 404s.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyReviewed = errors.New("record already reviewed")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
