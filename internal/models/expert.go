package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpertService is a bookable plan offered by an expert.
type ExpertService struct {
	ID                string         `gorm:"primaryKey;size:36" json:"id"`
	ExpertID          string         `gorm:"size:36;not null;index" json:"expert_id"`
	Title             string         `gorm:"size:255;not null" json:"title"`
	Description       string         `gorm:"type:text" json:"description"`
	PriceCents        int64          `gorm:"not null" json:"price"`
	AvailabilitySlots string         `gorm:"type:text" json:"availability_slots"` // JSON array of slot strings
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	Expert Profile `gorm:"foreignKey:ExpertID" json:"-"`
}

func (ExpertService) TableName() string {
	return "expert_services"
}

func (s *ExpertService) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// ExpertVideo is an intro/showcase video on an expert's public profile.
type ExpertVideo struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	ExpertID     string         `gorm:"size:36;not null;index" json:"expert_id"`
	URL          string         `gorm:"size:512;not null" json:"url"`
	ThumbnailURL string         `gorm:"size:512" json:"thumbnail_url"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Expert Profile `gorm:"foreignKey:ExpertID" json:"-"`
}

func (ExpertVideo) TableName() string {
	return "expert_videos"
}

func (v *ExpertVideo) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
