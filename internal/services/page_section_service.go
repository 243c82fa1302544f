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

const cacheKeyPageSectionsPrefix = "page_sections:"

type PageSectionService interface {
	ActiveForPage(ctx context.Context, db *gorm.DB, page string) ([]models.PageSection, error)
	List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.PageSection], error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.PageSection, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreatePageSectionRequest) (*models.PageSection, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdatePageSectionRequest) (*models.PageSection, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}

type pageSectionService struct {
	repo  *repositories.PageSectionRepository
	cache cache.Cache
}

func NewPageSectionService(repo *repositories.PageSectionRepository, c cache.Cache) PageSectionService {
	return &pageSectionService{repo: repo, cache: c}
}

func (s *pageSectionService) ActiveForPage(ctx context.Context, db *gorm.DB, page string) ([]models.PageSection, error) {
	key := cacheKeyPageSectionsPrefix + page
	return cache.Remember(ctx, s.cache, key, contentCacheTTL, func() ([]models.PageSection, error) {
		return s.repo.ActiveForPage(db, page)
	})
}

func (s *pageSectionService) List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.PageSection], error) {
	return s.repo.Paginate(db, q, page, perPage)
}

func (s *pageSectionService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.PageSection, error) {
	sec, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Page section")
		}
		return nil, apperrors.InternalError(err)
	}
	return sec, nil
}

func (s *pageSectionService) Create(ctx context.Context, db *gorm.DB, req *dto.CreatePageSectionRequest) (*models.PageSection, error) {
	sec := &models.PageSection{
		Page:       req.Page,
		SectionKey: req.SectionKey,
		Title:      req.Title,
		Content:    jsonObject(req.Content),
		IsActive:   true,
		SortOrder:  req.SortOrder,
	}
	if req.IsActive != nil {
		sec.IsActive = *req.IsActive
	}

	if err := s.repo.Create(db, sec); err != nil {
		return nil, serviceError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyPageSectionsPrefix+sec.Page)
	return sec, nil
}

func (s *pageSectionService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdatePageSectionRequest) (*models.PageSection, error) {
	// Resolve the current row first so both old and new page keys can be
	// invalidated on a move.
	existing, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}

	updates := req.ToUpdates()
	if req.Content != nil {
		updates["content"] = jsonObject(*req.Content)
	}

	if len(updates) > 0 {
		if err := s.repo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("Page section")
			}
			return nil, serviceError(err)
		}
	}

	keys := []string{cacheKeyPageSectionsPrefix + existing.Page}
	if req.Page != nil && *req.Page != existing.Page {
		keys = append(keys, cacheKeyPageSectionsPrefix+*req.Page)
	}
	cache.Forget(ctx, s.cache, keys...)
	return s.Get(ctx, db, id)
}

func (s *pageSectionService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	existing, err := s.Get(ctx, db, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Page section")
		}
		return apperrors.InternalError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyPageSectionsPrefix+existing.Page)
	return nil
}
