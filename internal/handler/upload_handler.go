package handler

import (
	"context"
	"fmt"
	"net/http"

	"equiedge/internal/chat"
	"equiedge/internal/middleware"
	"equiedge/internal/models"
	"equiedge/internal/repository"
	"equiedge/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 100 << 20 // 100 MB, videos included

type UploadHandler struct {
	media       cloudinary.Client
	profileRepo *repository.ProfileRepository
	expertRepo  *repository.ExpertRepository
	provisioner *chat.Provisioner
}

func NewUploadHandler(media cloudinary.Client, profileRepo *repository.ProfileRepository, expertRepo *repository.ExpertRepository, provisioner *chat.Provisioner) *UploadHandler {
	return &UploadHandler{media: media, profileRepo: profileRepo, expertRepo: expertRepo, provisioner: provisioner}
}

// UploadAvatar stores a profile image and points the profile at it.
func (h *UploadHandler) UploadAvatar(c *gin.Context) {
	if h.media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media uploads not configured"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer file.Close()

	profileID := middleware.GetProfileID(c)
	url, _, err := h.media.UploadImage(c.Request.Context(), file, "avatars", fmt.Sprintf("avatar_%s", profileID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	p, err := h.profileRepo.GetByID(profileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	p.ProfileImageURL = url
	if err := h.profileRepo.Update(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	// Propagate the new avatar to the chat identity; best-effort.
	_ = h.provisioner.EnsureAccount(context.Background(), p.ID, p.DisplayName(middleware.GetEmail(c)), p.ProfileImageURL)

	c.JSON(http.StatusOK, gin.H{"url": url, "profile": p})
}

// UploadExpertVideo stores a showcase video and adds it to the calling
// expert's public profile.
func (h *UploadHandler) UploadExpertVideo(c *gin.Context) {
	if h.media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media uploads not configured"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer file.Close()

	expertID := middleware.GetProfileID(c)
	url, thumbnail, err := h.media.UploadVideo(c.Request.Context(), file, "expert_videos", "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	video := &models.ExpertVideo{
		ExpertID:     expertID,
		URL:          url,
		ThumbnailURL: thumbnail,
	}
	if err := h.expertRepo.CreateVideo(video); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save video"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"video": video})
}
