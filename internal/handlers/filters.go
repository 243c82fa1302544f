package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/repositories"
)

// filterKind tells listFilters how to coerce a query param value.
type filterKind int

const (
	filterBool filterKind = iota
	filterInt
	filterString
)

// listFilters maps whitelisted query params onto AND-combined equality
// conditions. Unknown params are ignored; unparseable values skip their
// condition instead of failing the request.
func listFilters(c *gin.Context, allowed map[string]filterKind) repositories.Query {
	q := repositories.Query{}
	for name, kind := range allowed {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		switch kind {
		case filterBool:
			if v, err := strconv.ParseBool(raw); err == nil {
				q = q.Where(name+" = ?", v)
			}
		case filterInt:
			if v, err := strconv.Atoi(raw); err == nil {
				q = q.Where(name+" = ?", v)
			}
		case filterString:
			q = q.Where(name+" = ?", raw)
		}
	}
	return q
}
