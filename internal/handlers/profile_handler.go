package handlers

import (
	"net/http"

	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService *services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.GET("/employer", h.GetEmployerProfile)
		profiles.PUT("/employer", h.UpsertEmployerProfile)
		profiles.GET("/job-seeker", h.GetJobSeekerProfile)
		profiles.PUT("/job-seeker", h.UpsertJobSeekerProfile)
	}
}

func (h *ProfileHandler) GetEmployerProfile(c *gin.Context) {
	profile, err := h.profileService.GetEmployerProfile(c.Request.Context(), h.Principal(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpsertEmployerProfile(c *gin.Context) {
	var req dto.UpsertEmployerProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpsertEmployerProfile(c.Request.Context(), h.Principal(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetJobSeekerProfile(c *gin.Context) {
	profile, err := h.profileService.GetJobSeekerProfile(c.Request.Context(), h.Principal(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpsertJobSeekerProfile(c *gin.Context) {
	var req dto.UpsertJobSeekerProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpsertJobSeekerProfile(c.Request.Context(), h.Principal(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
