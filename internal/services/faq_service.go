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

const cacheKeyActiveFAQs = "faqs:active"

type FAQService interface {
	Active(ctx context.Context, db *gorm.DB) ([]models.FAQ, error)
	ActiveByCategory(ctx context.Context, db *gorm.DB, category string) ([]models.FAQ, error)
	List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.FAQ], error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.FAQ, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateFAQRequest) (*models.FAQ, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateFAQRequest) (*models.FAQ, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}

type faqService struct {
	repo  *repositories.FAQRepository
	cache cache.Cache
}

func NewFAQService(repo *repositories.FAQRepository, c cache.Cache) FAQService {
	return &faqService{repo: repo, cache: c}
}

func (s *faqService) Active(ctx context.Context, db *gorm.DB) ([]models.FAQ, error) {
	return cache.Remember(ctx, s.cache, cacheKeyActiveFAQs, contentCacheTTL, func() ([]models.FAQ, error) {
		return s.repo.Active(db)
	})
}

func (s *faqService) ActiveByCategory(ctx context.Context, db *gorm.DB, category string) ([]models.FAQ, error) {
	return s.repo.ActiveByCategory(db, category)
}

func (s *faqService) List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.FAQ], error) {
	return s.repo.Paginate(db, q, page, perPage)
}

func (s *faqService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.FAQ, error) {
	f, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("FAQ")
		}
		return nil, apperrors.InternalError(err)
	}
	return f, nil
}

func (s *faqService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateFAQRequest) (*models.FAQ, error) {
	f := &models.FAQ{
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		Status:    true,
		SortOrder: req.SortOrder,
	}
	if req.Status != nil {
		f.Status = *req.Status
	}

	if err := s.repo.Create(db, f); err != nil {
		return nil, serviceError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveFAQs)
	return f, nil
}

func (s *faqService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateFAQRequest) (*models.FAQ, error) {
	updates := req.ToUpdates()
	if len(updates) > 0 {
		if err := s.repo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("FAQ")
			}
			return nil, serviceError(err)
		}
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveFAQs)
	return s.Get(ctx, db, id)
}

func (s *faqService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("FAQ")
		}
		return apperrors.InternalError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveFAQs)
	return nil
}
