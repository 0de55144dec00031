package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is a stored in-app event for a user. Booking events carry the
// booking id so the client can deep-link straight to the session.
type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Type      string         `gorm:"size:50;not null;index" json:"type"` // NEW_BOOKING, NEW_MESSAGE
	Title     string         `gorm:"size:255" json:"title"`
	Body      string         `gorm:"type:text" json:"body"`
	BookingID *string        `gorm:"size:36;index" json:"booking_id,omitempty"`
	Data      string         `gorm:"type:text" json:"data"` // JSON payload
	ReadAt    *time.Time     `json:"read_at"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User    User     `gorm:"foreignKey:UserID" json:"-"`
	Booking *Booking `gorm:"foreignKey:BookingID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
