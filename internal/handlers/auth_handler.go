package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/middleware"
	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
	"eventcms_backend/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	service     services.AuthService
	transformer *resources.Transformer
}

func NewAuthHandler(base *BaseHandler, service services.AuthService, transformer *resources.Transformer) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service, transformer: transformer}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	result, err := h.service.Login(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Login successful", h.transformer.Login(result))
}

// Logout revokes the exact token that authenticated this request.
func (h *AuthHandler) Logout(c *gin.Context) {
	val, ok := c.Get(middleware.TokenIDKey)
	if !ok {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}
	tokenID, _ := val.(uint)
	if err := h.service.Logout(c.Request.Context(), h.GetDB(c), tokenID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Logged out successfully", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := h.CurrentUser(c)
	if user == nil {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}
	response.OK(c, "User retrieved successfully", h.transformer.User(user))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := h.CurrentUser(c)
	if user == nil {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}
	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	updated, err := h.service.UpdateProfile(c.Request.Context(), h.GetDB(c), user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Profile updated successfully", h.transformer.User(updated))
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user := h.CurrentUser(c)
	if user == nil {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}
	var req dto.ChangePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if err := h.service.ChangePassword(c.Request.Context(), h.GetDB(c), user.ID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Password changed successfully", nil)
}
