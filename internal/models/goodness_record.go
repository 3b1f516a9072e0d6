package models

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// GoodnessRecord is a student's claim of a good deed. It starts out pending
// and is decided exactly once by an admin review; an approval fixes the
// points awarded at that moment.
type GoodnessRecord struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"userId"`
	User          *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Description   string    `gorm:"not null" json:"description"`
	DatePerformed string    `gorm:"not null" json:"datePerformed"` // calendar date, YYYY-MM-DD
	ImageURL      *string   `json:"imageUrl,omitempty"`
	Status        string    `gorm:"not null;default:pending;index" json:"status"`
	PointsAwarded int       `gorm:"not null;default:0" json:"pointsAwarded"`
	AdminFeedback *string   `json:"adminFeedback,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
