package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation links a booking to its chat thread. The unique index on
// BookingID enforces at most one conversation per booking.
type Conversation struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	UserID    string         `gorm:"size:36;not null;index" json:"user_id"`
	ExpertID  string         `gorm:"size:36;not null;index" json:"expert_id"`
	BookingID string         `gorm:"size:36;not null;uniqueIndex" json:"booking_id"`
	Status    string         `gorm:"size:20;not null;index" json:"status"` // active, closed
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

func (Conversation) TableName() string {
	return "conversations"
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
