package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
)

type CompanyHandler struct {
	*BaseHandler
	service     services.CompanyService
	transformer *resources.Transformer
}

func NewCompanyHandler(base *BaseHandler, service services.CompanyService, transformer *resources.Transformer) *CompanyHandler {
	return &CompanyHandler{BaseHandler: base, service: service, transformer: transformer}
}

// Active returns the single active company profile for the public site.
func (h *CompanyHandler) Active(c *gin.Context) {
	info, err := h.service.Active(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Company information retrieved successfully", h.transformer.CompanyInformation(info))
}

func (h *CompanyHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Company information retrieved successfully", h.transformer.CompanyInformations(items))
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	info, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Company information retrieved successfully", h.transformer.CompanyInformation(info))
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyInformationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	info, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "Company information created successfully", h.transformer.CompanyInformation(info))
}

func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCompanyInformationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	info, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Company information updated successfully", h.transformer.CompanyInformation(info))
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Company information deleted successfully", nil)
}
