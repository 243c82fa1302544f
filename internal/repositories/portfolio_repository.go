package repositories

import (
	"gorm.io/gorm"

	"eventcms_backend/internal/models"
)

type PortfolioRepository struct {
	Repository[models.Portfolio]
}

func NewPortfolioRepository() *PortfolioRepository {
	return &PortfolioRepository{Repository: NewRepository[models.Portfolio]()}
}

// FindByIDWithCategory loads one portfolio along with its category.
func (r *PortfolioRepository) FindByIDWithCategory(db *gorm.DB, id uint) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := db.Preload("Category").First(&p, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *PortfolioRepository) FindBySlug(db *gorm.DB, slug string) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := db.Preload("Category").Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

// PaginateActive pages published portfolios, optionally narrowed to one
// category, with categories preloaded.
func (r *PortfolioRepository) PaginateActive(db *gorm.DB, categoryID *uint, page, perPage int) (*Page[models.Portfolio], error) {
	q := Query{}.Where("status = ?", true)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	return r.Paginate(db.Preload("Category"), q, page, perPage)
}

// Featured returns published portfolios flagged for the front page.
func (r *PortfolioRepository) Featured(db *gorm.DB) ([]models.Portfolio, error) {
	var items []models.Portfolio
	err := db.Preload("Category").
		Where("status = ? AND featured = ?", true, true).
		Order("sort_order ASC, created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, translateError(err)
	}
	return items, nil
}

type PortfolioCategoryRepository struct {
	Repository[models.PortfolioCategory]
}

func NewPortfolioCategoryRepository() *PortfolioCategoryRepository {
	return &PortfolioCategoryRepository{Repository: NewRepository[models.PortfolioCategory]()}
}

func (r *PortfolioCategoryRepository) Active(db *gorm.DB) ([]models.PortfolioCategory, error) {
	return r.FindAll(db, Query{}.Where("status = ?", true))
}

func (r *PortfolioCategoryRepository) FindBySlug(db *gorm.DB, slug string) (*models.PortfolioCategory, error) {
	return r.FindOne(db, Query{}.Where("slug = ?", slug))
}
