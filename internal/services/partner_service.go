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

const cacheKeyActivePartners = "partners:active"

type PartnerService interface {
	Active(ctx context.Context, db *gorm.DB) ([]models.Partner, error)
	ActiveGrouped(ctx context.Context, db *gorm.DB) (map[string][]models.Partner, error)
	ActiveByType(ctx context.Context, db *gorm.DB, partnerType string) ([]models.Partner, error)
	List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.Partner], error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.Partner, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreatePartnerRequest) (*models.Partner, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdatePartnerRequest) (*models.Partner, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}

type partnerService struct {
	repo  *repositories.PartnerRepository
	cache cache.Cache
}

func NewPartnerService(repo *repositories.PartnerRepository, c cache.Cache) PartnerService {
	return &partnerService{repo: repo, cache: c}
}

func (s *partnerService) Active(ctx context.Context, db *gorm.DB) ([]models.Partner, error) {
	return cache.Remember(ctx, s.cache, cacheKeyActivePartners, contentCacheTTL, func() ([]models.Partner, error) {
		return s.repo.Active(db)
	})
}

// ActiveGrouped buckets active partners by partner type, preserving the
// listing order within each bucket. Untyped partners land under "other".
func (s *partnerService) ActiveGrouped(ctx context.Context, db *gorm.DB) (map[string][]models.Partner, error) {
	partners, err := s.Active(ctx, db)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]models.Partner)
	for _, p := range partners {
		key := p.PartnerType
		if key == "" {
			key = "other"
		}
		grouped[key] = append(grouped[key], p)
	}
	return grouped, nil
}

func (s *partnerService) ActiveByType(ctx context.Context, db *gorm.DB, partnerType string) ([]models.Partner, error) {
	return s.repo.ActiveByType(db, partnerType)
}

func (s *partnerService) List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.Partner], error) {
	return s.repo.Paginate(db, q, page, perPage)
}

func (s *partnerService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.Partner, error) {
	p, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Partner")
		}
		return nil, apperrors.InternalError(err)
	}
	return p, nil
}

func (s *partnerService) Create(ctx context.Context, db *gorm.DB, req *dto.CreatePartnerRequest) (*models.Partner, error) {
	if err := ensureSlugFree(db, s.repo.Repository, req.Slug, 0); err != nil {
		return nil, err
	}
	p := &models.Partner{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		WebsiteURL:  req.WebsiteURL,
		PartnerType: req.PartnerType,
		Status:      true,
		SortOrder:   req.SortOrder,
	}
	if req.Status != nil {
		p.Status = *req.Status
	}

	if err := s.repo.Create(db, p); err != nil {
		return nil, serviceError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyActivePartners)
	return p, nil
}

func (s *partnerService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdatePartnerRequest) (*models.Partner, error) {
	if req.Slug != nil {
		if err := ensureSlugFree(db, s.repo.Repository, *req.Slug, id); err != nil {
			return nil, err
		}
	}
	updates := req.ToUpdates()
	if len(updates) > 0 {
		if err := s.repo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("Partner")
			}
			return nil, serviceError(err)
		}
	}
	cache.Forget(ctx, s.cache, cacheKeyActivePartners)
	return s.Get(ctx, db, id)
}

func (s *partnerService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Partner")
		}
		return apperrors.InternalError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyActivePartners)
	return nil
}
