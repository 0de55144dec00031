package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking records a paid session between a user and an expert. Both sides are
// profile ids. The first booking touching a profile unlocks chat for it.
type Booking struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	UserID         string         `gorm:"size:36;not null;index" json:"user_id"`
	ExpertID       string         `gorm:"size:36;not null;index" json:"expert_id"`
	ServiceID      *string        `gorm:"size:36;index" json:"service_id"`
	PricePaidCents int64          `gorm:"not null" json:"price_paid"`
	Status         string         `gorm:"size:20;not null;index" json:"status"` // confirmed, completed, cancelled
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	UserProfile   Profile        `gorm:"foreignKey:UserID" json:"-"`
	ExpertProfile Profile        `gorm:"foreignKey:ExpertID" json:"-"`
	Service       *ExpertService `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
