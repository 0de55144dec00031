package repository

import (
	"equiedge/internal/models"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(b *models.Booking) error {
	return r.db.Create(b).Error
}

func (r *BookingRepository) GetByID(id string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.Where("id = ?", id).Preload("Service").First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// HasAnyForProfile reports whether any booking exists where the profile
// appears as either party. This is the chat access predicate: one row is
// enough, so the query stops at the first match.
func (r *BookingRepository) HasAnyForProfile(profileID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("user_id = ? OR expert_id = ?", profileID, profileID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingRepository) ListByProfileID(profileID string, limit, offset int) ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.Where("user_id = ? OR expert_id = ?", profileID, profileID).
		Preload("Service").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *BookingRepository) Update(b *models.Booking) error {
	return r.db.Save(b).Error
}
