package repository

import (
	"equiedge/internal/models"

	"gorm.io/gorm"
)

type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func (r *ConversationRepository) Create(c *models.Conversation) error {
	return r.db.Create(c).Error
}

func (r *ConversationRepository) GetByBookingID(bookingID string) (*models.Conversation, error) {
	var c models.Conversation
	err := r.db.Where("booking_id = ?", bookingID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConversationRepository) ListByProfileID(profileID string, limit, offset int) ([]models.Conversation, error) {
	var list []models.Conversation
	err := r.db.Where("user_id = ? OR expert_id = ?", profileID, profileID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *ConversationRepository) Update(c *models.Conversation) error {
	return r.db.Save(c).Error
}
