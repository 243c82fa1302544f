package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/models"
	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
)

type FAQHandler struct {
	*BaseHandler
	service     services.FAQService
	transformer *resources.Transformer
}

func NewFAQHandler(base *BaseHandler, service services.FAQService, transformer *resources.Transformer) *FAQHandler {
	return &FAQHandler{BaseHandler: base, service: service, transformer: transformer}
}

// Active returns published FAQs, optionally narrowed by ?category=.
func (h *FAQHandler) Active(c *gin.Context) {
	ctx := c.Request.Context()
	db := h.GetDB(c)

	var err error
	var items []models.FAQ
	if category := c.Query("category"); category != "" {
		items, err = h.service.ActiveByCategory(ctx, db, category)
	} else {
		items, err = h.service.Active(ctx, db)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "FAQs retrieved successfully", h.transformer.FAQs(items))
}

func (h *FAQHandler) List(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 15)
	filters := listFilters(c, map[string]filterKind{"status": filterBool, "category": filterString})
	result, err := h.service.List(c.Request.Context(), h.GetDB(c), filters, page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "FAQs retrieved successfully", h.transformer.FAQs(result.Items), paginationOf(result))
}

func (h *FAQHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "FAQ retrieved successfully", h.transformer.FAQ(item))
}

func (h *FAQHandler) Create(c *gin.Context) {
	var req dto.CreateFAQRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "FAQ created successfully", h.transformer.FAQ(item))
}

func (h *FAQHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateFAQRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "FAQ updated successfully", h.transformer.FAQ(item))
}

func (h *FAQHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "FAQ deleted successfully", nil)
}
