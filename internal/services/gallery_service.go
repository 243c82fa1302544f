package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eventcms_backend/internal/models"
	"eventcms_backend/internal/repositories"
	"eventcms_backend/internal/services/dto"
	"eventcms_backend/pkg/apperrors"
)

type GalleryService interface {
	ListActive(ctx context.Context, db *gorm.DB, categoryID *uint, page, perPage int) (*repositories.Page[models.Gallery], error)
	List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.Gallery], error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.Gallery, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateGalleryRequest) (*models.Gallery, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateGalleryRequest) (*models.Gallery, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error

	Categories(ctx context.Context, db *gorm.DB) ([]models.GalleryCategory, error)
	ActiveCategories(ctx context.Context, db *gorm.DB) ([]models.GalleryCategory, error)
	CreateCategory(ctx context.Context, db *gorm.DB, req *dto.CreateCategoryRequest) (*models.GalleryCategory, error)
	UpdateCategory(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateCategoryRequest) (*models.GalleryCategory, error)
	DeleteCategory(ctx context.Context, db *gorm.DB, id uint) error
}

type galleryService struct {
	repo         *repositories.GalleryRepository
	categoryRepo *repositories.GalleryCategoryRepository
}

func NewGalleryService(repo *repositories.GalleryRepository, categoryRepo *repositories.GalleryCategoryRepository) GalleryService {
	return &galleryService{repo: repo, categoryRepo: categoryRepo}
}

func (s *galleryService) ListActive(ctx context.Context, db *gorm.DB, categoryID *uint, page, perPage int) (*repositories.Page[models.Gallery], error) {
	return s.repo.PaginateActive(db, categoryID, page, perPage)
}

func (s *galleryService) List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.Gallery], error) {
	return s.repo.Paginate(db.Preload("Category"), q, page, perPage)
}

func (s *galleryService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.Gallery, error) {
	g, err := s.repo.FindByIDWithCategory(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Gallery")
		}
		return nil, apperrors.InternalError(err)
	}
	return g, nil
}

func (s *galleryService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateGalleryRequest) (*models.Gallery, error) {
	eventDate, err := parseDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	g := &models.Gallery{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Images:      jsonList(req.Images),
		CoverImage:  req.CoverImage,
		EventDate:   eventDate,
		Status:      true,
		SortOrder:   req.SortOrder,
	}
	if req.Status != nil {
		g.Status = *req.Status
	}

	if err := s.repo.Create(db, g); err != nil {
		return nil, serviceError(err)
	}
	return s.Get(ctx, db, g.ID)
}

func (s *galleryService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateGalleryRequest) (*models.Gallery, error) {
	updates := req.ToUpdates()
	if req.EventDate != nil {
		eventDate, err := parseDate(*req.EventDate)
		if err != nil {
			return nil, err
		}
		updates["event_date"] = eventDate
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Images != nil {
		updates["images"] = jsonList(*req.Images)
	}

	if len(updates) > 0 {
		if err := s.repo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("Gallery")
			}
			return nil, serviceError(err)
		}
	}
	return s.Get(ctx, db, id)
}

func (s *galleryService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Gallery")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *galleryService) Categories(ctx context.Context, db *gorm.DB) ([]models.GalleryCategory, error) {
	return s.categoryRepo.FindAll(db, repositories.Query{})
}

func (s *galleryService) ActiveCategories(ctx context.Context, db *gorm.DB) ([]models.GalleryCategory, error) {
	return s.categoryRepo.Active(db)
}

func (s *galleryService) CreateCategory(ctx context.Context, db *gorm.DB, req *dto.CreateCategoryRequest) (*models.GalleryCategory, error) {
	if err := ensureSlugFree(db, s.categoryRepo.Repository, req.Slug, 0); err != nil {
		return nil, err
	}
	c := &models.GalleryCategory{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Status:      true,
		SortOrder:   req.SortOrder,
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if err := s.categoryRepo.Create(db, c); err != nil {
		return nil, serviceError(err)
	}
	return c, nil
}

func (s *galleryService) UpdateCategory(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateCategoryRequest) (*models.GalleryCategory, error) {
	if req.Slug != nil {
		if err := ensureSlugFree(db, s.categoryRepo.Repository, *req.Slug, id); err != nil {
			return nil, err
		}
	}
	updates := req.ToUpdates()
	if len(updates) > 0 {
		if err := s.categoryRepo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("Gallery category")
			}
			return nil, serviceError(err)
		}
	}
	c, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		return nil, serviceError(err)
	}
	return c, nil
}

func (s *galleryService) DeleteCategory(ctx context.Context, db *gorm.DB, id uint) error {
	inUse, err := s.repo.Exists(db, repositories.Query{}.Where("category_id = ?", id))
	if err != nil {
		return apperrors.InternalError(err)
	}
	if inUse {
		return apperrors.Conflict("category still has galleries assigned")
	}
	if err := s.categoryRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Gallery category")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
