package handlers

import (
	"eventcms_backend/internal/repositories"
	"eventcms_backend/internal/response"
)

// paginationOf converts repository page metadata into the envelope's
// pagination block.
func paginationOf[T any](p *repositories.Page[T]) *response.Pagination {
	return &response.Pagination{
		Total:       p.Total,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.LastPage,
		From:        p.From,
		To:          p.To,
	}
}
