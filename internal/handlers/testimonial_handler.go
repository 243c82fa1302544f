package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
)

type TestimonialHandler struct {
	*BaseHandler
	service     services.TestimonialService
	transformer *resources.Transformer
}

func NewTestimonialHandler(base *BaseHandler, service services.TestimonialService, transformer *resources.Transformer) *TestimonialHandler {
	return &TestimonialHandler{BaseHandler: base, service: service, transformer: transformer}
}

// Active returns approved testimonials for the public site.
func (h *TestimonialHandler) Active(c *gin.Context) {
	items, err := h.service.Active(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Testimonials retrieved successfully", h.transformer.Testimonials(items))
}

func (h *TestimonialHandler) List(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 10)
	filters := listFilters(c, map[string]filterKind{"status": filterBool, "rating": filterInt})
	result, err := h.service.List(c.Request.Context(), h.GetDB(c), filters, page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "Testimonials retrieved successfully", h.transformer.Testimonials(result.Items), paginationOf(result))
}

func (h *TestimonialHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Testimonial retrieved successfully", h.transformer.Testimonial(item))
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req dto.CreateTestimonialRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "Testimonial created successfully", h.transformer.Testimonial(item))
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateTestimonialRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Testimonial updated successfully", h.transformer.Testimonial(item))
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Testimonial deleted successfully", nil)
}

func (h *TestimonialHandler) Approve(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.service.Approve(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Testimonial approved successfully", h.transformer.Testimonial(item))
}

func (h *TestimonialHandler) Reject(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.service.Reject(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Testimonial rejected successfully", h.transformer.Testimonial(item))
}

func (h *TestimonialHandler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Testimonial statistics retrieved successfully", stats)
}
