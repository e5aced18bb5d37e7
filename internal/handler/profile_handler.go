package handler

import (
	"errors"
	"net/http"

	"procurement/internal/middleware"
	"procurement/internal/service"
	"procurement/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler sets up the routing dependencies for profile endpoints
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup, auth *middleware.Auth) {
	user := router.Group("/api/user")
	{
		// Called by the onboarding flow right after sign-up, before a session exists
		user.POST("/profile", auth.OptionalIdentity(), h.UpsertProfile)
		user.GET("/profile", auth.RequireIdentity(), h.GetProfile)
		user.GET("/shell", auth.RequireIdentity(), h.GetShell)
	}
}

// UpsertProfile creates or updates the profile of an identity
// @Summary      Create or update user profile
// @Description  Upserts the profile keyed by clerkId. Fields left out of the payload keep their stored value.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpsertProfileRequest  true  "Profile payload"
// @Success      201      {object}  model.User
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/user/profile [post]
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var req service.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	identity, _ := middleware.IdentityFrom(c)
	user, err := h.profileService.Upsert(c.Request.Context(), identity.ID, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Missing required fields: clerkId and email."))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to save user profile."))
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetProfile returns the profile of the authenticated caller
// @Summary      Get current user profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.ProfileResponse
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/user/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	profile, err := h.profileService.Get(c.Request.Context(), identity.ID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, profile)
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "User not found"))
	default:
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Internal Error"))
	}
}

// GetShell returns the data shown in the dashboard navbar
// @Summary      Get layout shell data
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=service.ShellResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/user/shell [get]
func (h *ProfileHandler) GetShell(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	shell, err := h.profileService.GetShell(c.Request.Context(), identity)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Internal Error"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, shell))
}
