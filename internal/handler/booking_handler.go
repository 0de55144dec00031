package handler

import (
	"log"
	"net/http"

	"equiedge/internal/domain"
	"equiedge/internal/middleware"
	"equiedge/internal/models"
	"equiedge/internal/repository"
	"equiedge/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingRepo      *repository.BookingRepository
	conversationRepo *repository.ConversationRepository
	profileRepo      *repository.ProfileRepository
	expertRepo       *repository.ExpertRepository
	notifications    *service.NotificationService
}

func NewBookingHandler(
	bookingRepo *repository.BookingRepository,
	conversationRepo *repository.ConversationRepository,
	profileRepo *repository.ProfileRepository,
	expertRepo *repository.ExpertRepository,
	notifications *service.NotificationService,
) *BookingHandler {
	return &BookingHandler{
		bookingRepo:      bookingRepo,
		conversationRepo: conversationRepo,
		profileRepo:      profileRepo,
		expertRepo:       expertRepo,
		notifications:    notifications,
	}
}

type CreateBookingRequest struct {
	ExpertID  string `json:"expert_id" binding:"required,uuid"`
	ServiceID string `json:"service_id" binding:"required,uuid"`
}

// Create books a session with an expert. The booking is confirmed
// immediately at the service's current price and opens an active
// conversation. This is the event that unlocks chat for both profiles.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profileID := middleware.GetProfileID(c)
	if profileID == req.ExpertID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot book yourself"})
		return
	}

	expert, err := h.profileRepo.GetByID(req.ExpertID)
	if err != nil || !expert.IsExpert {
		c.JSON(http.StatusNotFound, gin.H{"error": "expert not found"})
		return
	}
	svc, err := h.expertRepo.GetServiceByID(req.ServiceID)
	if err != nil || svc.ExpertID != expert.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	booking := &models.Booking{
		UserID:         profileID,
		ExpertID:       expert.ID,
		ServiceID:      &svc.ID,
		PricePaidCents: svc.PriceCents,
		Status:         domain.BookingStatusConfirmed,
	}
	if err := h.bookingRepo.Create(booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	conversation := &models.Conversation{
		UserID:    profileID,
		ExpertID:  expert.ID,
		BookingID: booking.ID,
		Status:    domain.ConversationStatusActive,
	}
	if err := h.conversationRepo.Create(conversation); err != nil {
		// Booking stands; the conversation row is a convenience index over
		// the provider thread and can be backfilled.
		log.Printf("[booking] conversation create failed: booking=%s err=%v", booking.ID, err)
	}

	clientName := "A client"
	if client, err := h.profileRepo.GetByID(profileID); err == nil {
		clientName = client.DisplayName("")
	}
	if err := h.notifications.NotifyNewBooking(expert.UserID, booking.ID, clientName); err != nil {
		log.Printf("[booking] notify expert failed: booking=%s err=%v", booking.ID, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":      booking,
		"conversation": conversation,
	})
}

// List returns the caller's bookings, as client or expert, newest first.
func (h *BookingHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	bookings, err := h.bookingRepo.ListByProfileID(middleware.GetProfileID(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
