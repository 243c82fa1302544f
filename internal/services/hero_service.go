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

const cacheKeyActiveHeroes = "hero_sections:active"

type HeroService interface {
	Active(ctx context.Context, db *gorm.DB) ([]models.HeroSection, error)
	List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.HeroSection], error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.HeroSection, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateHeroSectionRequest) (*models.HeroSection, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateHeroSectionRequest) (*models.HeroSection, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}

type heroService struct {
	repo  *repositories.HeroSectionRepository
	cache cache.Cache
}

func NewHeroService(repo *repositories.HeroSectionRepository, c cache.Cache) HeroService {
	return &heroService{repo: repo, cache: c}
}

func (s *heroService) Active(ctx context.Context, db *gorm.DB) ([]models.HeroSection, error) {
	return cache.Remember(ctx, s.cache, cacheKeyActiveHeroes, contentCacheTTL, func() ([]models.HeroSection, error) {
		return s.repo.Active(db)
	})
}

func (s *heroService) List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.HeroSection], error) {
	return s.repo.Paginate(db, q, page, perPage)
}

func (s *heroService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.HeroSection, error) {
	h, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Hero section")
		}
		return nil, apperrors.InternalError(err)
	}
	return h, nil
}

func (s *heroService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateHeroSectionRequest) (*models.HeroSection, error) {
	h := &models.HeroSection{
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		Description:     req.Description,
		BackgroundImage: req.BackgroundImage,
		CTAText:         req.CTAText,
		CTALink:         req.CTALink,
		IsActive:        true,
		SortOrder:       req.SortOrder,
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}

	if err := s.repo.Create(db, h); err != nil {
		return nil, serviceError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveHeroes)
	return h, nil
}

func (s *heroService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateHeroSectionRequest) (*models.HeroSection, error) {
	updates := req.ToUpdates()
	if len(updates) > 0 {
		if err := s.repo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("Hero section")
			}
			return nil, serviceError(err)
		}
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveHeroes)
	return s.Get(ctx, db, id)
}

func (s *heroService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Hero section")
		}
		return apperrors.InternalError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveHeroes)
	return nil
}
