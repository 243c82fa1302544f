package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eventcms_backend/internal/cache"
	"eventcms_backend/internal/models"
	"eventcms_backend/internal/repositories"
	"eventcms_backend/internal/services/dto"
	"eventcms_backend/pkg/apperrors"
)

const cacheKeyFeaturedPortfolios = "portfolios:featured"

type PortfolioService interface {
	ListActive(ctx context.Context, db *gorm.DB, categoryID *uint, page, perPage int) (*repositories.Page[models.Portfolio], error)
	Featured(ctx context.Context, db *gorm.DB) ([]models.Portfolio, error)
	GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Portfolio, error)
	List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.Portfolio], error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.Portfolio, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreatePortfolioRequest) (*models.Portfolio, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdatePortfolioRequest) (*models.Portfolio, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error

	Categories(ctx context.Context, db *gorm.DB) ([]models.PortfolioCategory, error)
	ActiveCategories(ctx context.Context, db *gorm.DB) ([]models.PortfolioCategory, error)
	CreateCategory(ctx context.Context, db *gorm.DB, req *dto.CreateCategoryRequest) (*models.PortfolioCategory, error)
	UpdateCategory(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateCategoryRequest) (*models.PortfolioCategory, error)
	DeleteCategory(ctx context.Context, db *gorm.DB, id uint) error
}

type portfolioService struct {
	repo         *repositories.PortfolioRepository
	categoryRepo *repositories.PortfolioCategoryRepository
	cache        cache.Cache
}

func NewPortfolioService(repo *repositories.PortfolioRepository, categoryRepo *repositories.PortfolioCategoryRepository, c cache.Cache) PortfolioService {
	return &portfolioService{repo: repo, categoryRepo: categoryRepo, cache: c}
}

func (s *portfolioService) ListActive(ctx context.Context, db *gorm.DB, categoryID *uint, page, perPage int) (*repositories.Page[models.Portfolio], error) {
	return s.repo.PaginateActive(db, categoryID, page, perPage)
}

func (s *portfolioService) Featured(ctx context.Context, db *gorm.DB) ([]models.Portfolio, error) {
	return cache.Remember(ctx, s.cache, cacheKeyFeaturedPortfolios, contentCacheTTL, func() ([]models.Portfolio, error) {
		return s.repo.Featured(db)
	})
}

func (s *portfolioService) GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Portfolio, error) {
	p, err := s.repo.FindBySlug(db, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Portfolio")
		}
		return nil, apperrors.InternalError(err)
	}
	return p, nil
}

func (s *portfolioService) List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.Portfolio], error) {
	return s.repo.Paginate(db.Preload("Category"), q, page, perPage)
}

func (s *portfolioService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.Portfolio, error) {
	p, err := s.repo.FindByIDWithCategory(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Portfolio")
		}
		return nil, apperrors.InternalError(err)
	}
	return p, nil
}

func (s *portfolioService) Create(ctx context.Context, db *gorm.DB, req *dto.CreatePortfolioRequest) (*models.Portfolio, error) {
	eventDate, err := parseDate(req.EventDate)
	if err != nil {
		return nil, err
	}
	if err := ensureSlugFree(db, s.repo.Repository, req.Slug, 0); err != nil {
		return nil, err
	}

	p := &models.Portfolio{
		Title:            req.Title,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		ClientName:       req.ClientName,
		EventDate:        eventDate,
		EventLocation:    req.EventLocation,
		CategoryID:       req.CategoryID,
		Images:           jsonList(req.Images),
		FeaturedImage:    req.FeaturedImage,
		Completed:        true,
		Status:           true,
		SortOrder:        req.SortOrder,
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Completed != nil {
		p.Completed = *req.Completed
	}
	if req.Status != nil {
		p.Status = *req.Status
	}

	if err := s.repo.Create(db, p); err != nil {
		return nil, serviceError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyFeaturedPortfolios)
	return s.Get(ctx, db, p.ID)
}

func (s *portfolioService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdatePortfolioRequest) (*models.Portfolio, error) {
	if req.Slug != nil {
		if err := ensureSlugFree(db, s.repo.Repository, *req.Slug, id); err != nil {
			return nil, err
		}
	}
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
				return nil, apperrors.NotFound("Portfolio")
			}
			return nil, serviceError(err)
		}
	}
	cache.Forget(ctx, s.cache, cacheKeyFeaturedPortfolios)
	return s.Get(ctx, db, id)
}

func (s *portfolioService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Portfolio")
		}
		return apperrors.InternalError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyFeaturedPortfolios)
	return nil
}

func (s *portfolioService) Categories(ctx context.Context, db *gorm.DB) ([]models.PortfolioCategory, error) {
	return s.categoryRepo.FindAll(db, repositories.Query{})
}

func (s *portfolioService) ActiveCategories(ctx context.Context, db *gorm.DB) ([]models.PortfolioCategory, error) {
	return s.categoryRepo.Active(db)
}

func (s *portfolioService) CreateCategory(ctx context.Context, db *gorm.DB, req *dto.CreateCategoryRequest) (*models.PortfolioCategory, error) {
	if err := ensureSlugFree(db, s.categoryRepo.Repository, req.Slug, 0); err != nil {
		return nil, err
	}
	c := &models.PortfolioCategory{
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

func (s *portfolioService) UpdateCategory(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateCategoryRequest) (*models.PortfolioCategory, error) {
	if req.Slug != nil {
		if err := ensureSlugFree(db, s.categoryRepo.Repository, *req.Slug, id); err != nil {
			return nil, err
		}
	}
	updates := req.ToUpdates()
	if len(updates) > 0 {
		if err := s.categoryRepo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("Portfolio category")
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

// DeleteCategory refuses to remove a category that still has portfolios.
func (s *portfolioService) DeleteCategory(ctx context.Context, db *gorm.DB, id uint) error {
	inUse, err := s.repo.Exists(db, repositories.Query{}.Where("category_id = ?", id))
	if err != nil {
		return apperrors.InternalError(err)
	}
	if inUse {
		return apperrors.Conflict("category still has portfolios assigned")
	}
	if err := s.categoryRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Portfolio category")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
