package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
)

type TeamHandler struct {
	*BaseHandler
	service     services.TeamService
	transformer *resources.Transformer
}

func NewTeamHandler(base *BaseHandler, service services.TeamService, transformer *resources.Transformer) *TeamHandler {
	return &TeamHandler{BaseHandler: base, service: service, transformer: transformer}
}

func (h *TeamHandler) Active(c *gin.Context) {
	items, err := h.service.Active(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Team members retrieved successfully", h.transformer.TeamMembers(items))
}

func (h *TeamHandler) Featured(c *gin.Context) {
	items, err := h.service.Featured(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Featured team members retrieved successfully", h.transformer.TeamMembers(items))
}

func (h *TeamHandler) List(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 15)
	filters := listFilters(c, map[string]filterKind{"is_active": filterBool, "is_featured": filterBool})
	result, err := h.service.List(c.Request.Context(), h.GetDB(c), filters, page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "Team members retrieved successfully", h.transformer.TeamMembers(result.Items), paginationOf(result))
}

func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Team member retrieved successfully", h.transformer.TeamMember(item))
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "Team member created successfully", h.transformer.TeamMember(item))
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateTeamMemberRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Team member updated successfully", h.transformer.TeamMember(item))
}

func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Team member deleted successfully", nil)
}
