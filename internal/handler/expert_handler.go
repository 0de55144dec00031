package handler

import (
	"net/http"
	"strconv"

	"equiedge/internal/middleware"
	"equiedge/internal/models"
	"equiedge/internal/repository"

	"github.com/gin-gonic/gin"
)

type ExpertHandler struct {
	profileRepo *repository.ProfileRepository
	expertRepo  *repository.ExpertRepository
}

func NewExpertHandler(profileRepo *repository.ProfileRepository, expertRepo *repository.ExpertRepository) *ExpertHandler {
	return &ExpertHandler{profileRepo: profileRepo, expertRepo: expertRepo}
}

// ListExperts returns expert profiles for the browse page.
func (h *ExpertHandler) ListExperts(c *gin.Context) {
	limit, offset := pagination(c)
	experts, err := h.profileRepo.ListExperts(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list experts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"experts": experts})
}

// GetExpert returns one expert profile with its services and videos.
func (h *ExpertHandler) GetExpert(c *gin.Context) {
	id := c.Param("id")
	p, err := h.profileRepo.GetByID(id)
	if err != nil || !p.IsExpert {
		c.JSON(http.StatusNotFound, gin.H{"error": "expert not found"})
		return
	}
	services, err := h.expertRepo.ListServicesByExpertID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load services"})
		return
	}
	videos, err := h.expertRepo.ListVideosByExpertID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load videos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"expert":   p,
		"services": services,
		"videos":   videos,
	})
}

type CreateServiceRequest struct {
	Title             string `json:"title" binding:"required,max=255"`
	Description       string `json:"description"`
	PriceCents        int64  `json:"price" binding:"required,gt=0"`
	AvailabilitySlots string `json:"availability_slots"`
}

// CreateService adds a bookable plan to the calling expert's profile.
func (h *ExpertHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := &models.ExpertService{
		ExpertID:          middleware.GetProfileID(c),
		Title:             req.Title,
		Description:       req.Description,
		PriceCents:        req.PriceCents,
		AvailabilitySlots: req.AvailabilitySlots,
	}
	if err := h.expertRepo.CreateService(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": s})
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
