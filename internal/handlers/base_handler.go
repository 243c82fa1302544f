package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eventcms_backend/internal/logger"
	"eventcms_backend/internal/middleware"
	"eventcms_backend/internal/models"
	"eventcms_backend/internal/validator"
	"eventcms_backend/pkg/apperrors"
)

// BaseHandler carries the pieces every resource handler needs: request
// validation, error rendering and access to the request-scoped DB
// handle.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// GetDB extracts the *gorm.DB placed in the context by the DB
// middleware. A missing handle is a wiring bug, not a runtime
// condition.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	val, ok := c.Get(middleware.DBKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db handle missing from context")
		panic("DB middleware did not run before this handler")
	}
	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db handle has wrong type", "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}
	return db
}

// CurrentUser returns the authenticated user set by the auth middleware,
// or nil on public routes.
func (h *BaseHandler) CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(middleware.UserKey)
	if !ok {
		return nil
	}
	user, _ := val.(*models.User)
	return user
}

// BindAndValidateJSON binds the JSON body and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError renders any error coming back from the service
// layer.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// ParseID reads the numeric :id route parameter. On failure it writes a
// 400 response and returns false.
func (h *BaseHandler) ParseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid id parameter"))
		return 0, false
	}
	return uint(id), true
}

// ParsePagination reads page / per_page query params. Each listing passes
// its own per_page default; out-of-range values are clamped by the
// repository layer.
func (h *BaseHandler) ParsePagination(c *gin.Context, defaultPerPage int) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	return page, perPage
}

// ParseOptionalUintQuery reads an optional numeric query param such as
// category_id.
func (h *BaseHandler) ParseOptionalUintQuery(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}
