package handler

import (
	"context"
	"net/http"

	"equiedge/internal/chat"
	"equiedge/internal/middleware"
	"equiedge/internal/repository"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	userRepo    *repository.UserRepository
	profileRepo *repository.ProfileRepository
	provisioner *chat.Provisioner
}

func NewMeHandler(userRepo *repository.UserRepository, profileRepo *repository.ProfileRepository, provisioner *chat.Provisioner) *MeHandler {
	return &MeHandler{userRepo: userRepo, profileRepo: profileRepo, provisioner: provisioner}
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	p, err := h.profileRepo.GetByID(middleware.GetProfileID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": p})
}

type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Bio          *string `json:"bio"`
	ProfileBio   *string `json:"profile_bio"`
	Location     *string `json:"location"`
	InstagramURL *string `json:"instagram_url"`
	FacebookURL  *string `json:"facebook_url"`
	LinkedInURL  *string `json:"linkedin_url"`
	HomeCountry  *string `json:"home_country"`
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.profileRepo.GetByID(middleware.GetProfileID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.ProfileBio != nil {
		p.ProfileBio = *req.ProfileBio
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.InstagramURL != nil {
		p.InstagramURL = *req.InstagramURL
	}
	if req.FacebookURL != nil {
		p.FacebookURL = *req.FacebookURL
	}
	if req.LinkedInURL != nil {
		p.LinkedInURL = *req.LinkedInURL
	}
	if req.HomeCountry != nil {
		p.HomeCountry = *req.HomeCountry
	}
	if err := h.profileRepo.Update(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	// Keep the chat identity's display name in sync; best-effort.
	_ = h.provisioner.EnsureAccount(context.Background(), p.ID, p.DisplayName(middleware.GetEmail(c)), p.ProfileImageURL)

	c.JSON(http.StatusOK, gin.H{"profile": p})
}

type FCMTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *MeHandler) RegisterFCMToken(c *gin.Context) {
	var req FCMTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.userRepo.SaveFCMToken(middleware.GetUserID(c), req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
