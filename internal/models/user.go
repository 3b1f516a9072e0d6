package models

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Username      string    `gorm:"uniqueIndex;not null" json:"username"`
	Password      string    `gorm:"not null" json:"-"` // scrypt digest, "<hex-key>.<hex-salt>"
	Role          string    `gorm:"not null;default:student" json:"role"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	ClassLevel    *string   `json:"classLevel,omitempty"` // e.g. "M.1/1"
	StudentNumber *int      `json:"studentNumber,omitempty"`
	Points        int       `gorm:"not null;default:0" json:"points"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
