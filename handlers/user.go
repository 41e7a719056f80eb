package handlers

import (
	"net/http"

	userRepo "pawspa/database/repository/user"
	"pawspa/models"
	"pawspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the authenticated user's profile.
type UserHandler struct {
	Users  userRepo.UserRepository
	Logger *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users userRepo.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

// GetProfileHandler handles GET /api/users/me.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	user, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "profile not found", userID)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfileHandler handles PUT /api/users/me. The profile is upserted so
// a first-time caller materializes their record from the token subject.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var req models.UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	user := models.User{
		ID:          c.GetString("userID"),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.Users.Upsert(c.Request.Context(), user); err != nil {
		h.Logger.Error("UpdateProfile: failed", zap.String("userID", user.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, user)
}
