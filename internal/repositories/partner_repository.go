package repositories

import (
	"gorm.io/gorm"

	"eventcms_backend/internal/models"
)

type PartnerRepository struct {
	Repository[models.Partner]
}

func NewPartnerRepository() *PartnerRepository {
	return &PartnerRepository{Repository: NewRepository[models.Partner]()}
}

func (r *PartnerRepository) Active(db *gorm.DB) ([]models.Partner, error) {
	return r.FindAll(db, Query{}.Where("status = ?", true))
}

func (r *PartnerRepository) ActiveByType(db *gorm.DB, partnerType string) ([]models.Partner, error) {
	return r.FindAll(db, Query{}.
		Where("status = ?", true).
		Where("partner_type = ?", partnerType))
}

func (r *PartnerRepository) FindBySlug(db *gorm.DB, slug string) (*models.Partner, error) {
	return r.FindOne(db, Query{}.Where("slug = ?", slug))
}
