package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
)

type HeroHandler struct {
	*BaseHandler
	service     services.HeroService
	transformer *resources.Transformer
}

func NewHeroHandler(base *BaseHandler, service services.HeroService, transformer *resources.Transformer) *HeroHandler {
	return &HeroHandler{BaseHandler: base, service: service, transformer: transformer}
}

func (h *HeroHandler) Active(c *gin.Context) {
	items, err := h.service.Active(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Hero sections retrieved successfully", h.transformer.HeroSections(items))
}

func (h *HeroHandler) List(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 15)
	filters := listFilters(c, map[string]filterKind{"is_active": filterBool})
	result, err := h.service.List(c.Request.Context(), h.GetDB(c), filters, page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "Hero sections retrieved successfully", h.transformer.HeroSections(result.Items), paginationOf(result))
}

func (h *HeroHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Hero section retrieved successfully", h.transformer.HeroSection(item))
}

func (h *HeroHandler) Create(c *gin.Context) {
	var req dto.CreateHeroSectionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "Hero section created successfully", h.transformer.HeroSection(item))
}

func (h *HeroHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateHeroSectionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Hero section updated successfully", h.transformer.HeroSection(item))
}

func (h *HeroHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Hero section deleted successfully", nil)
}
