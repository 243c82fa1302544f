package services

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"eventcms_backend/internal/repositories"
	"eventcms_backend/pkg/apperrors"
)

// contentCacheTTL is how long read-mostly public content stays cached.
const contentCacheTTL = time.Hour

// jsonList serializes a string slice for a JSON column. A nil slice
// becomes an empty JSON array so readers never see SQL NULL.
func jsonList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

// jsonMap serializes a string map for a JSON column.
func jsonMap(values map[string]string) datatypes.JSON {
	if values == nil {
		values = map[string]string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(raw)
}

// jsonObject serializes free-form content for a JSON column.
func jsonObject(values map[string]interface{}) datatypes.JSON {
	if values == nil {
		values = map[string]interface{}{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(raw)
}

// ensureSlugFree rejects a slug another row already uses, reporting it as
// a field validation error rather than a late constraint conflict. The
// unique index remains the authoritative guard against races. excludeID
// skips the row being updated so keeping the current slug stays legal.
func ensureSlugFree[T any](db *gorm.DB, repo repositories.Repository[T], slug string, excludeID uint) error {
	q := repositories.Query{}.Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	taken, err := repo.Exists(db, q)
	if err != nil {
		return serviceError(err)
	}
	if taken {
		return apperrors.ValidationError(map[string]string{"slug": "The slug has already been taken"})
	}
	return nil
}

// serviceError passes AppErrors through untouched and wraps anything
// else as an internal error. Repository conflict translations already
// arrive as AppErrors with the right status.
func serviceError(err error) error {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		return appErr
	}
	return apperrors.InternalError(err)
}

// parseDate parses a YYYY-MM-DD request field. Empty input yields nil.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date, expected YYYY-MM-DD")
	}
	return &t, nil
}
