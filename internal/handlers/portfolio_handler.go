package handlers

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/response"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
)

type PortfolioHandler struct {
	*BaseHandler
	service     services.PortfolioService
	transformer *resources.Transformer
}

func NewPortfolioHandler(base *BaseHandler, service services.PortfolioService, transformer *resources.Transformer) *PortfolioHandler {
	return &PortfolioHandler{BaseHandler: base, service: service, transformer: transformer}
}

// PublicIndex pages published portfolios, optionally filtered by
// ?category_id=.
func (h *PortfolioHandler) PublicIndex(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 12)
	categoryID := h.ParseOptionalUintQuery(c, "category_id")

	result, err := h.service.ListActive(c.Request.Context(), h.GetDB(c), categoryID, page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "Portfolios retrieved successfully", h.transformer.Portfolios(result.Items), paginationOf(result))
}

func (h *PortfolioHandler) Featured(c *gin.Context) {
	items, err := h.service.Featured(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Featured portfolios retrieved successfully", h.transformer.Portfolios(items))
}

func (h *PortfolioHandler) ShowBySlug(c *gin.Context) {
	item, err := h.service.GetBySlug(c.Request.Context(), h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Portfolio retrieved successfully", h.transformer.Portfolio(item))
}

func (h *PortfolioHandler) PublicCategories(c *gin.Context) {
	items, err := h.service.ActiveCategories(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Portfolio categories retrieved successfully", h.transformer.PortfolioCategories(items))
}

func (h *PortfolioHandler) List(c *gin.Context) {
	page, perPage := h.ParsePagination(c, 12)
	filters := listFilters(c, map[string]filterKind{"status": filterBool, "featured": filterBool, "category_id": filterInt})
	result, err := h.service.List(c.Request.Context(), h.GetDB(c), filters, page, perPage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Paginated(c, "Portfolios retrieved successfully", h.transformer.Portfolios(result.Items), paginationOf(result))
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Portfolio retrieved successfully", h.transformer.Portfolio(item))
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	var req dto.CreatePortfolioRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "Portfolio created successfully", h.transformer.Portfolio(item))
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdatePortfolioRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Portfolio updated successfully", h.transformer.Portfolio(item))
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Portfolio deleted successfully", nil)
}

func (h *PortfolioHandler) ListCategories(c *gin.Context) {
	items, err := h.service.Categories(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Portfolio categories retrieved successfully", h.transformer.PortfolioCategories(items))
}

func (h *PortfolioHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.CreateCategory(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.Created(c, "Portfolio category created successfully", h.transformer.PortfolioCategory(item))
}

func (h *PortfolioHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	item, err := h.service.UpdateCategory(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Portfolio category updated successfully", h.transformer.PortfolioCategory(item))
}

func (h *PortfolioHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(c.Request.Context(), h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	response.OK(c, "Portfolio category deleted successfully", nil)
}
