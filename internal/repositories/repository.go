package repositories

import (
	"errors"

	"gorm.io/gorm"

	"eventcms_backend/pkg/apperrors"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Page is one page of a listing along with pagination metadata.
type Page[T any] struct {
	Items       []T
	Total       int64
	PerPage     int
	CurrentPage int
	LastPage    int
	From        int
	To          int
}

// Query describes filters and ordering for listing operations. It is a
// value type: every With* method returns a modified copy, so a Query can
// be shared and extended without one caller's filters leaking into
// another's.
type Query struct {
	conds  []cond
	orders []string
}

type cond struct {
	expr string
	args []interface{}
}

// Where adds a SQL condition with placeholder args.
func (q Query) Where(expr string, args ...interface{}) Query {
	conds := make([]cond, len(q.conds), len(q.conds)+1)
	copy(conds, q.conds)
	q.conds = append(conds, cond{expr: expr, args: args})
	return q
}

// WhereIn adds an IN condition for the column.
func (q Query) WhereIn(column string, values interface{}) Query {
	return q.Where(column+" IN ?", values)
}

// OrderBy appends an ordering clause. The first call wins on ties only
// with later calls; with no calls the repository default applies.
func (q Query) OrderBy(clause string) Query {
	orders := make([]string, len(q.orders), len(q.orders)+1)
	copy(orders, q.orders)
	q.orders = append(orders, clause)
	return q
}

func (q Query) apply(db *gorm.DB, defaultOrder string) *gorm.DB {
	for _, c := range q.conds {
		db = db.Where(c.expr, c.args...)
	}
	if len(q.orders) > 0 {
		for _, o := range q.orders {
			db = db.Order(o)
		}
	} else if defaultOrder != "" {
		db = db.Order(defaultOrder)
	}
	return db
}

// Repository implements the shared persistence operations for one model.
// It holds no *gorm.DB; every call receives the handle so a request-scoped
// transaction can be threaded through unchanged.
type Repository[T any] struct {
	// defaultOrder is applied when the caller's Query carries no ordering.
	defaultOrder string
}

// NewRepository builds a repository ordering listings by sort_order then
// recency, which suits every displayable entity.
func NewRepository[T any]() Repository[T] {
	return Repository[T]{defaultOrder: "sort_order ASC, created_at DESC"}
}

// NewRepositoryOrdered builds a repository with a custom default ordering,
// for tables without a sort_order column.
func NewRepositoryOrdered[T any](defaultOrder string) Repository[T] {
	return Repository[T]{defaultOrder: defaultOrder}
}

func (r Repository[T]) Create(db *gorm.DB, entity *T) error {
	if err := db.Create(entity).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r Repository[T]) FindByID(db *gorm.DB, id uint) (*T, error) {
	var entity T
	if err := db.First(&entity, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &entity, nil
}

// FindOne returns the first row matching the query, or ErrNotFound.
func (r Repository[T]) FindOne(db *gorm.DB, q Query) (*T, error) {
	var entity T
	if err := q.apply(db, r.defaultOrder).First(&entity).Error; err != nil {
		return nil, translateError(err)
	}
	return &entity, nil
}

// FindAll returns every row matching the query in the query's (or the
// repository's default) order.
func (r Repository[T]) FindAll(db *gorm.DB, q Query) ([]T, error) {
	var entities []T
	if err := q.apply(db, r.defaultOrder).Find(&entities).Error; err != nil {
		return nil, translateError(err)
	}
	return entities, nil
}

// Paginate returns the requested page along with the total match count.
// page and perPage are normalized to sane minimums before use.
func (r Repository[T]) Paginate(db *gorm.DB, q Query, page, perPage int) (*Page[T], error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}
	if perPage > 100 {
		perPage = 100
	}

	var model T
	counter := db.Model(&model)
	for _, c := range q.conds {
		counter = counter.Where(c.expr, c.args...)
	}

	var total int64
	if err := counter.Count(&total).Error; err != nil {
		return nil, translateError(err)
	}

	var entities []T
	offset := (page - 1) * perPage
	if err := q.apply(db, r.defaultOrder).Offset(offset).Limit(perPage).Find(&entities).Error; err != nil {
		return nil, translateError(err)
	}

	p := &Page[T]{
		Items:       entities,
		Total:       total,
		PerPage:     perPage,
		CurrentPage: page,
	}
	p.LastPage = int((total + int64(perPage) - 1) / int64(perPage))
	if p.LastPage < 1 {
		p.LastPage = 1
	}
	if len(entities) > 0 {
		p.From = offset + 1
		p.To = offset + len(entities)
	}
	return p, nil
}

// Update applies the given column updates to the row with the given id.
// Only keys present in updates are touched, so callers control partial
// updates explicitly rather than through zero-value guessing.
func (r Repository[T]) Update(db *gorm.DB, id uint, updates map[string]interface{}) error {
	var model T
	res := db.Model(&model).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Save persists the full entity state.
func (r Repository[T]) Save(db *gorm.DB, entity *T) error {
	if err := db.Save(entity).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r Repository[T]) Delete(db *gorm.DB, id uint) error {
	var model T
	res := db.Delete(&model, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of rows matching the query.
func (r Repository[T]) Count(db *gorm.DB, q Query) (int64, error) {
	var model T
	counter := db.Model(&model)
	for _, c := range q.conds {
		counter = counter.Where(c.expr, c.args...)
	}
	var total int64
	if err := counter.Count(&total).Error; err != nil {
		return 0, translateError(err)
	}
	return total, nil
}

// Exists reports whether any row matches the query.
func (r Repository[T]) Exists(db *gorm.DB, q Query) (bool, error) {
	n, err := r.Count(db, q)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// translateError maps gorm errors onto the repository's error vocabulary.
// Requires gorm.Config{TranslateError: true} so driver-specific duplicate
// key errors surface as gorm.ErrDuplicatedKey.
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Conflict("a record with the same unique value already exists")
	default:
		return err
	}
}
