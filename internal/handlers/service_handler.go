package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
)

type ServiceHandler struct {
	*BaseHandler
	service     services.ServiceService
	transformer *resources.Transformer
}

func NewServiceHandler(base *BaseHandler, service services.ServiceService, transformer *resources.Transformer) *ServiceHandler {
	return &ServiceHandler{BaseHandler: base, service: service, transformer: transformer}
}

func (h *ServiceHandler) Active(c *gin.Context) {
	items, err := h.service.Active(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Services retrieved successfully", h.transformer.Services(items))
}

func (h *ServiceHandler) ShowBySlug(c *gin.Context) {
	item, err := h.service.GetBySlug(c.Request.Context(), h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Service retrieved successfully", h.transformer.Service(item))
}

func (h *ServiceHandler) List(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 10)
	filters := listFilters(c, map[string]filterKind{"status": filterBool})
	result, err := h.service.List(c.Request.Context(), h.GetDB(c), filters, page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "Services retrieved successfully", h.transformer.Services(result.Items), paginationOf(result))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Service retrieved successfully", h.transformer.Service(item))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "Service created successfully", h.transformer.Service(item))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Service updated successfully", h.transformer.Service(item))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Service deleted successfully", nil)
}
