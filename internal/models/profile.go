package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the marketplace-domain record for a user or expert. Its id is a
// UUID distinct from the auth user id; bookings, conversations and the chat
// provider all key on this id.
type Profile struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	UserID          uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName       string         `gorm:"size:100" json:"first_name"`
	LastName        string         `gorm:"size:100" json:"last_name"`
	Bio             string         `gorm:"type:text" json:"bio"`
	ProfileBio      string         `gorm:"type:text" json:"profile_bio"`
	Location        string         `gorm:"size:255" json:"location"`
	InstagramURL    string         `gorm:"size:512" json:"instagram_url"`
	FacebookURL     string         `gorm:"size:512" json:"facebook_url"`
	LinkedInURL     string         `gorm:"size:512" json:"linkedin_url"`
	IsExpert        bool           `gorm:"default:false;index" json:"is_expert"`
	HomeCountry     string         `gorm:"size:100" json:"home_country"`
	ProfileImageURL string         `gorm:"size:512" json:"profile_image_url"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// DisplayName is the name sent to the chat provider. Falls back to the
// account email's local part when both name fields are empty.
func (p *Profile) DisplayName(fallbackEmail string) string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name != "" {
		return name
	}
	if at := strings.Index(fallbackEmail, "@"); at > 0 {
		return fallbackEmail[:at]
	}
	return "User"
}
