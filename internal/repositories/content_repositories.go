package repositories

import (
	"gorm.io/gorm"

	"eventcms_backend/internal/models"
)

// The remaining content entities share the generic operations; the thin
// wrappers below add only the lookups their services need.

type TeamMemberRepository struct {
	Repository[models.TeamMember]
}

func NewTeamMemberRepository() *TeamMemberRepository {
	return &TeamMemberRepository{Repository: NewRepository[models.TeamMember]()}
}

func (r *TeamMemberRepository) Active(db *gorm.DB) ([]models.TeamMember, error) {
	return r.FindAll(db, Query{}.Where("is_active = ?", true))
}

func (r *TeamMemberRepository) Featured(db *gorm.DB) ([]models.TeamMember, error) {
	return r.FindAll(db, Query{}.Where("is_active = ? AND is_featured = ?", true, true))
}

type ServiceRepository struct {
	Repository[models.Service]
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{Repository: NewRepository[models.Service]()}
}

func (r *ServiceRepository) Active(db *gorm.DB) ([]models.Service, error) {
	return r.FindAll(db, Query{}.Where("status = ?", true))
}

func (r *ServiceRepository) FindBySlug(db *gorm.DB, slug string) (*models.Service, error) {
	return r.FindOne(db, Query{}.Where("slug = ?", slug))
}

type FAQRepository struct {
	Repository[models.FAQ]
}

func NewFAQRepository() *FAQRepository {
	return &FAQRepository{Repository: NewRepository[models.FAQ]()}
}

func (r *FAQRepository) Active(db *gorm.DB) ([]models.FAQ, error) {
	return r.FindAll(db, Query{}.Where("status = ?", true))
}

func (r *FAQRepository) ActiveByCategory(db *gorm.DB, category string) ([]models.FAQ, error) {
	return r.FindAll(db, Query{}.
		Where("status = ?", true).
		Where("category = ?", category))
}

type HeroSectionRepository struct {
	Repository[models.HeroSection]
}

func NewHeroSectionRepository() *HeroSectionRepository {
	return &HeroSectionRepository{Repository: NewRepository[models.HeroSection]()}
}

func (r *HeroSectionRepository) Active(db *gorm.DB) ([]models.HeroSection, error) {
	return r.FindAll(db, Query{}.Where("is_active = ?", true))
}

type CompanyInformationRepository struct {
	Repository[models.CompanyInformation]
}

func NewCompanyInformationRepository() *CompanyInformationRepository {
	return &CompanyInformationRepository{
		Repository: NewRepositoryOrdered[models.CompanyInformation]("created_at DESC"),
	}
}

// ActiveOne returns the single active company profile. Marking one
// profile active is expected to deactivate the others at the service
// level.
func (r *CompanyInformationRepository) ActiveOne(db *gorm.DB) (*models.CompanyInformation, error) {
	return r.FindOne(db, Query{}.Where("is_active = ?", true))
}

// DeactivateOthers clears the active flag on every profile except the
// given one.
func (r *CompanyInformationRepository) DeactivateOthers(db *gorm.DB, keepID uint) error {
	return db.Model(&models.CompanyInformation{}).
		Where("id <> ?", keepID).
		Update("is_active", false).Error
}

type EventRentalRepository struct {
	Repository[models.EventRental]
}

func NewEventRentalRepository() *EventRentalRepository {
	return &EventRentalRepository{Repository: NewRepository[models.EventRental]()}
}

func (r *EventRentalRepository) AvailableByType(db *gorm.DB, rentalType string) ([]models.EventRental, error) {
	q := Query{}.Where("available = ?", true)
	if rentalType != "" {
		q = q.Where("rental_type = ?", rentalType)
	}
	return r.FindAll(db, q)
}

func (r *EventRentalRepository) Featured(db *gorm.DB) ([]models.EventRental, error) {
	return r.FindAll(db, Query{}.Where("available = ? AND featured = ?", true, true))
}

func (r *EventRentalRepository) FindBySlug(db *gorm.DB, slug string) (*models.EventRental, error) {
	return r.FindOne(db, Query{}.Where("slug = ?", slug))
}

type PageSectionRepository struct {
	Repository[models.PageSection]
}

func NewPageSectionRepository() *PageSectionRepository {
	return &PageSectionRepository{Repository: NewRepository[models.PageSection]()}
}

func (r *PageSectionRepository) ActiveForPage(db *gorm.DB, page string) ([]models.PageSection, error) {
	return r.FindAll(db, Query{}.
		Where("is_active = ?", true).
		Where("page = ?", page))
}

func (r *PageSectionRepository) FindByKey(db *gorm.DB, page, sectionKey string) (*models.PageSection, error) {
	return r.FindOne(db, Query{}.
		Where("page = ?", page).
		Where("section_key = ?", sectionKey))
}
