package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
)

type GalleryHandler struct {
	*BaseHandler
	service     services.GalleryService
	transformer *resources.Transformer
}

func NewGalleryHandler(base *BaseHandler, service services.GalleryService, transformer *resources.Transformer) *GalleryHandler {
	return &GalleryHandler{BaseHandler: base, service: service, transformer: transformer}
}

func (h *GalleryHandler) PublicIndex(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 12)
	categoryID := h.ParseOptionalUintQuery(c, "category_id")

	result, err := h.service.ListActive(c.Request.Context(), h.GetDB(c), categoryID, page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "Galleries retrieved successfully", h.transformer.Galleries(result.Items), paginationOf(result))
}

func (h *GalleryHandler) PublicCategories(c *gin.Context) {
	items, err := h.service.ActiveCategories(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Gallery categories retrieved successfully", h.transformer.GalleryCategories(items))
}

func (h *GalleryHandler) List(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 12)
	filters := listFilters(c, map[string]filterKind{"status": filterBool, "category_id": filterInt})
	result, err := h.service.List(c.Request.Context(), h.GetDB(c), filters, page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "Galleries retrieved successfully", h.transformer.Galleries(result.Items), paginationOf(result))
}

func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Gallery retrieved successfully", h.transformer.Gallery(item))
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var req dto.CreateGalleryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "Gallery created successfully", h.transformer.Gallery(item))
}

func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateGalleryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Gallery updated successfully", h.transformer.Gallery(item))
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Gallery deleted successfully", nil)
}

func (h *GalleryHandler) ListCategories(c *gin.Context) {
	items, err := h.service.Categories(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Gallery categories retrieved successfully", h.transformer.GalleryCategories(items))
}

func (h *GalleryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.CreateCategory(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "Gallery category created successfully", h.transformer.GalleryCategory(item))
}

func (h *GalleryHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.UpdateCategory(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Gallery category updated successfully", h.transformer.GalleryCategory(item))
}

func (h *GalleryHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Gallery category deleted successfully", nil)
}
