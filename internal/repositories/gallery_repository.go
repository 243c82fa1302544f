package repositories

import (
	"gorm.io/gorm"

	"eventcms_backend/internal/models"
)

type GalleryRepository struct {
	Repository[models.Gallery]
}

func NewGalleryRepository() *GalleryRepository {
	return &GalleryRepository{Repository: NewRepository[models.Gallery]()}
}

func (r *GalleryRepository) FindByIDWithCategory(db *gorm.DB, id uint) (*models.Gallery, error) {
	var g models.Gallery
	if err := db.Preload("Category").First(&g, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &g, nil
}

func (r *GalleryRepository) PaginateActive(db *gorm.DB, categoryID *uint, page, perPage int) (*Page[models.Gallery], error) {
	q := Query{}.Where("status = ?", true)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	return r.Paginate(db.Preload("Category"), q, page, perPage)
}

type GalleryCategoryRepository struct {
	Repository[models.GalleryCategory]
}

func NewGalleryCategoryRepository() *GalleryCategoryRepository {
	return &GalleryCategoryRepository{Repository: NewRepository[models.GalleryCategory]()}
}

func (r *GalleryCategoryRepository) Active(db *gorm.DB) ([]models.GalleryCategory, error) {
	return r.FindAll(db, Query{}.Where("status = ?", true))
}

func (r *GalleryCategoryRepository) FindBySlug(db *gorm.DB, slug string) (*models.GalleryCategory, error) {
	return r.FindOne(db, Query{}.Where("slug = ?", slug))
}
