package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
)

type PartnerHandler struct {
	*BaseHandler
	service     services.PartnerService
	transformer *resources.Transformer
}

func NewPartnerHandler(base *BaseHandler, service services.PartnerService, transformer *resources.Transformer) *PartnerHandler {
	return &PartnerHandler{BaseHandler: base, service: service, transformer: transformer}
}

func (h *PartnerHandler) Active(c *gin.Context) {
	items, err := h.service.Active(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Partners retrieved successfully", h.transformer.Partners(items))
}

// Grouped returns active partners bucketed by partner type.
func (h *PartnerHandler) Grouped(c *gin.Context) {
	groups, err := h.service.ActiveGrouped(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Partners retrieved successfully", h.transformer.PartnersGrouped(groups))
}

func (h *PartnerHandler) ByType(c *gin.Context) {
	items, err := h.service.ActiveByType(c.Request.Context(), h.GetDB(c), c.Param("type"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Partners retrieved successfully", h.transformer.Partners(items))
}

func (h *PartnerHandler) List(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 10)
	filters := listFilters(c, map[string]filterKind{"status": filterBool, "partner_type": filterString})
	result, err := h.service.List(c.Request.Context(), h.GetDB(c), filters, page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "Partners retrieved successfully", h.transformer.Partners(result.Items), paginationOf(result))
}

func (h *PartnerHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Partner retrieved successfully", h.transformer.Partner(item))
}

func (h *PartnerHandler) Create(c *gin.Context) {
	var req dto.CreatePartnerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "Partner created successfully", h.transformer.Partner(item))
}

func (h *PartnerHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdatePartnerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Partner updated successfully", h.transformer.Partner(item))
}

func (h *PartnerHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Partner deleted successfully", nil)
}
