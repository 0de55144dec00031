package service

import (
	"context"
	"encoding/json"

	"equiedge/internal/domain"
	"equiedge/internal/models"
	"equiedge/internal/repository"
)

type NotificationService struct {
	repo     *repository.NotificationRepository
	userRepo *repository.UserRepository
	fcm      *FCMService
}

func NewNotificationService(repo *repository.NotificationRepository, userRepo *repository.UserRepository, fcm *FCMService) *NotificationService {
	return &NotificationService{repo: repo, userRepo: userRepo, fcm: fcm}
}

func (s *NotificationService) Notify(userID uint, notifType, title, body string, bookingID *string, data map[string]interface{}) error {
	var dataJSON string
	if data != nil {
		b, _ := json.Marshal(data)
		dataJSON = string(b)
	}
	err := s.repo.Create(&models.Notification{
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Body:      body,
		BookingID: bookingID,
		Data:      dataJSON,
	})
	if err != nil {
		return err
	}
	s.sendPush(userID, notifType, title, body, data)
	return nil
}

func (s *NotificationService) sendPush(userID uint, notifType, title, body string, data map[string]interface{}) {
	if s.fcm == nil || s.userRepo == nil {
		return
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil || u == nil || u.FCMToken == "" {
		return
	}
	_ = s.fcm.SendToUser(context.Background(), u.FCMToken, notifType, title, body, data)
}

// NotifyNewBooking tells the expert a session was booked with them.
func (s *NotificationService) NotifyNewBooking(expertUserID uint, bookingID, clientName string) error {
	return s.Notify(expertUserID, domain.NotifTypeNewBooking, "New session booked",
		clientName+" booked a session with you", &bookingID,
		map[string]interface{}{"booking_id": bookingID})
}
