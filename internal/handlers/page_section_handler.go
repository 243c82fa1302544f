package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
)

type PageSectionHandler struct {
	*BaseHandler
	service     services.PageSectionService
	transformer *resources.Transformer
}

func NewPageSectionHandler(base *BaseHandler, service services.PageSectionService, transformer *resources.Transformer) *PageSectionHandler {
	return &PageSectionHandler{BaseHandler: base, service: service, transformer: transformer}
}

// ForPage returns the active sections composing one public page.
func (h *PageSectionHandler) ForPage(c *gin.Context) {
	items, err := h.service.ActiveForPage(c.Request.Context(), h.GetDB(c), c.Param("page"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Page sections retrieved successfully", h.transformer.PageSections(items))
}

func (h *PageSectionHandler) List(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 15)
	filters := listFilters(c, map[string]filterKind{"page": filterString, "is_active": filterBool})
	result, err := h.service.List(c.Request.Context(), h.GetDB(c), filters, page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "Page sections retrieved successfully", h.transformer.PageSections(result.Items), paginationOf(result))
}

func (h *PageSectionHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Page section retrieved successfully", h.transformer.PageSection(item))
}

func (h *PageSectionHandler) Create(c *gin.Context) {
	var req dto.CreatePageSectionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "Page section created successfully", h.transformer.PageSection(item))
}

func (h *PageSectionHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdatePageSectionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Page section updated successfully", h.transformer.PageSection(item))
}

func (h *PageSectionHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Page section deleted successfully", nil)
}
