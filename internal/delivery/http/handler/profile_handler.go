package handler

import (
	"log/slog"
	"net/http"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
	logger         *slog.Logger
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// CreateProfile handles POST /profiles
// @Summary Create profile
// @Description Store a profile; the id is generated when empty
// @Tags profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body domain.UserProfile true "Profile data"
// @Success 201 {object} domain.UserProfile
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req domain.UserProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	created, err := h.profileUseCase.CreateProfile(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "failed to create profile")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListProfiles handles GET /profiles
// @Summary List profiles
// @Tags profiles
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.UserProfile
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileUseCase.ListProfiles(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "failed to list profiles")
		return
	}
	if profiles == nil {
		profiles = []*domain.UserProfile{}
	}

	c.JSON(http.StatusOK, profiles)
}

// GetProfile handles GET /profiles/:id
// @Summary Get profile
// @Tags profiles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} domain.UserProfile
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.profileUseCase.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateProfile handles PUT /profiles/:id
// @Summary Update profile
// @Description Replace the profile attributes; cached reports involving it are invalidated
// @Tags profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body domain.UserProfile true "Profile data"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /profiles/{id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req domain.UserProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	updated, err := h.profileUseCase.UpdateProfile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProfile handles DELETE /profiles/:id
// @Summary Delete profile
// @Tags profiles
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.profileUseCase.DeleteProfile(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err, "failed to delete profile")
		return
	}

	c.Status(http.StatusNoContent)
}
