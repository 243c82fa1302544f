package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
)

type RentalHandler struct {
	*BaseHandler
	service     services.RentalService
	transformer *resources.Transformer
}

func NewRentalHandler(base *BaseHandler, service services.RentalService, transformer *resources.Transformer) *RentalHandler {
	return &RentalHandler{BaseHandler: base, service: service, transformer: transformer}
}

// Available returns rentable items, optionally filtered by ?type=.
func (h *RentalHandler) Available(c *gin.Context) {
	items, err := h.service.Available(c.Request.Context(), h.GetDB(c), c.Query("type"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Event rentals retrieved successfully", h.transformer.EventRentals(items))
}

func (h *RentalHandler) Featured(c *gin.Context) {
	items, err := h.service.Featured(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Featured event rentals retrieved successfully", h.transformer.EventRentals(items))
}

func (h *RentalHandler) ShowBySlug(c *gin.Context) {
	item, err := h.service.GetBySlug(c.Request.Context(), h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Event rental retrieved successfully", h.transformer.EventRental(item))
}

func (h *RentalHandler) CheckAvailability(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	availability, err := h.service.CheckAvailability(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Availability checked successfully", availability)
}

func (h *RentalHandler) List(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 10)
	filters := listFilters(c, map[string]filterKind{"available": filterBool, "featured": filterBool, "rental_type": filterString})
	result, err := h.service.List(c.Request.Context(), h.GetDB(c), filters, page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "Event rentals retrieved successfully", h.transformer.EventRentals(result.Items), paginationOf(result))
}

func (h *RentalHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Event rental retrieved successfully", h.transformer.EventRental(item))
}

func (h *RentalHandler) Create(c *gin.Context) {
	var req dto.CreateEventRentalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "Event rental created successfully", h.transformer.EventRental(item))
}

func (h *RentalHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateEventRentalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Event rental updated successfully", h.transformer.EventRental(item))
}

func (h *RentalHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Event rental deleted successfully", nil)
}
