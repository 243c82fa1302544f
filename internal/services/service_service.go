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

const cacheKeyActiveServices = "services:active"

// ServiceService manages the company's offered services catalog.
type ServiceService interface {
	Active(ctx context.Context, db *gorm.DB) ([]models.Service, error)
	GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Service, error)
	List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.Service], error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.Service, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateServiceRequest) (*models.Service, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}

type serviceService struct {
	repo  *repositories.ServiceRepository
	cache cache.Cache
}

func NewServiceService(repo *repositories.ServiceRepository, c cache.Cache) ServiceService {
	return &serviceService{repo: repo, cache: c}
}

func (s *serviceService) Active(ctx context.Context, db *gorm.DB) ([]models.Service, error) {
	return cache.Remember(ctx, s.cache, cacheKeyActiveServices, contentCacheTTL, func() ([]models.Service, error) {
		return s.repo.Active(db)
	})
}

func (s *serviceService) GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Service, error) {
	svc, err := s.repo.FindBySlug(db, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Service")
		}
		return nil, apperrors.InternalError(err)
	}
	return svc, nil
}

func (s *serviceService) List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.Service], error) {
	return s.repo.Paginate(db, q, page, perPage)
}

func (s *serviceService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.Service, error) {
	svc, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Service")
		}
		return nil, apperrors.InternalError(err)
	}
	return svc, nil
}

func (s *serviceService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateServiceRequest) (*models.Service, error) {
	if err := ensureSlugFree(db, s.repo.Repository, req.Slug, 0); err != nil {
		return nil, err
	}
	svc := &models.Service{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
		ImageURL:    req.ImageURL,
		Features:    jsonList(req.Features),
		Status:      true,
		SortOrder:   req.SortOrder,
	}
	if req.Status != nil {
		svc.Status = *req.Status
	}

	if err := s.repo.Create(db, svc); err != nil {
		return nil, serviceError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveServices)
	return svc, nil
}

func (s *serviceService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateServiceRequest) (*models.Service, error) {
	if req.Slug != nil {
		if err := ensureSlugFree(db, s.repo.Repository, *req.Slug, id); err != nil {
			return nil, err
		}
	}
	updates := req.ToUpdates()
	if req.Features != nil {
		updates["features"] = jsonList(*req.Features)
	}

	if len(updates) > 0 {
		if err := s.repo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("Service")
			}
			return nil, serviceError(err)
		}
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveServices)
	return s.Get(ctx, db, id)
}

func (s *serviceService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Service")
		}
		return apperrors.InternalError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveServices)
	return nil
}
