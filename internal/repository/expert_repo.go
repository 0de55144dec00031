package repository

import (
	"equiedge/internal/models"

	"gorm.io/gorm"
)

type ExpertRepository struct {
	db *gorm.DB
}

func NewExpertRepository(db *gorm.DB) *ExpertRepository {
	return &ExpertRepository{db: db}
}

func (r *ExpertRepository) CreateService(s *models.ExpertService) error {
	return r.db.Create(s).Error
}

func (r *ExpertRepository) GetServiceByID(id string) (*models.ExpertService, error) {
	var s models.ExpertService
	err := r.db.Where("id = ?", id).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListServicesByExpertID returns an expert's plans, cheapest first (the
// order the profile page renders them in).
func (r *ExpertRepository) ListServicesByExpertID(expertID string) ([]models.ExpertService, error) {
	var list []models.ExpertService
	err := r.db.Where("expert_id = ?", expertID).Order("price_cents ASC").Find(&list).Error
	return list, err
}

func (r *ExpertRepository) CreateVideo(v *models.ExpertVideo) error {
	return r.db.Create(v).Error
}

func (r *ExpertRepository) ListVideosByExpertID(expertID string) ([]models.ExpertVideo, error) {
	var list []models.ExpertVideo
	err := r.db.Where("expert_id = ?", expertID).Order("created_at DESC").Find(&list).Error
	return list, err
}
