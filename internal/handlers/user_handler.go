package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	service     services.AuthService
	transformer *resources.Transformer
}

func NewUserHandler(base *BaseHandler, service services.AuthService, transformer *resources.Transformer) *UserHandler {
	return &UserHandler{BaseHandler: base, service: service, transformer: transformer}
}

func (h *UserHandler) List(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 15)
	result, err := h.service.ListUsers(c.Request.Context(), h.GetDB(c), page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "Users retrieved successfully", h.transformer.Users(result.Items), paginationOf(result))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	user, err := h.service.GetUser(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "User retrieved successfully", h.transformer.User(user))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	user, err := h.service.CreateUser(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "User created successfully", h.transformer.User(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	user, err := h.service.UpdateUser(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "User updated successfully", h.transformer.User(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteUser(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "User deleted successfully", nil)
}
