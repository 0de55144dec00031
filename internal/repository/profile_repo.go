package repository

import (
	"equiedge/internal/models"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(p *models.Profile) error {
	return r.db.Create(p).Error
}

func (r *ProfileRepository) GetByID(id string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetByUserID(userID uint) (*models.Profile, error) {
	var p models.Profile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Update(p *models.Profile) error {
	return r.db.Save(p).Error
}

// ListExperts returns expert profiles for the browse page, newest first.
func (r *ProfileRepository) ListExperts(limit, offset int) ([]models.Profile, error) {
	var list []models.Profile
	err := r.db.Where("is_expert = ?", true).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
