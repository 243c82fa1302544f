package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/logger"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/pkg/apperrors"
)

type UploadHandler struct {
	*BaseHandler
	service services.UploadService
}

func NewUploadHandler(base *BaseHandler, service services.UploadService) *UploadHandler {
	return &UploadHandler{BaseHandler: base, service: service}
}

// Upload accepts a multipart form with a "file" field and stores it
// under the rules of the :type asset class.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("A file field is required"))
		return
	}
	result, err := h.service.Upload(c.Request.Context(), c.Param("type"), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Replacing an existing asset: remove the old file best-effort.
	// External URLs are left alone.
	if old := c.PostForm("replace"); old != "" && !strings.HasPrefix(old, "http://") && !strings.HasPrefix(old, "https://") {
		if err := h.service.Delete(c.Request.Context(), old); err != nil {
			logger.CtxWarn(c.Request.Context(), "failed to delete replaced asset", "path", old, "error", err)
		}
	}

	response.Created(c, "File uploaded successfully", result)
}

type deleteUploadRequest struct {
	Path string `json:"path" validate:"required"`
}

func (h *UploadHandler) Delete(c *gin.Context) {
	var req deleteUploadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if err := h.service.Delete(c.Request.Context(), req.Path); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "File deleted successfully", nil)
}

// AssetTypes lists the accepted upload type names for admin tooling.
func (h *UploadHandler) AssetTypes(c *gin.Context) {
	response.OK(c, "Asset types retrieved successfully", h.service.AssetTypes())
}
