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

const cacheKeyFeaturedRentals = "rentals:featured"

// RentalAvailability is the public availability check result.
type RentalAvailability struct {
	ID        uint `json:"id"`
	Available bool `json:"available"`
}

type RentalService interface {
	Available(ctx context.Context, db *gorm.DB, rentalType string) ([]models.EventRental, error)
	Featured(ctx context.Context, db *gorm.DB) ([]models.EventRental, error)
	GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.EventRental, error)
	CheckAvailability(ctx context.Context, db *gorm.DB, id uint) (*RentalAvailability, error)
	List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.EventRental], error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.EventRental, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateEventRentalRequest) (*models.EventRental, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateEventRentalRequest) (*models.EventRental, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}

type rentalService struct {
	repo  *repositories.EventRentalRepository
	cache cache.Cache
}

func NewRentalService(repo *repositories.EventRentalRepository, c cache.Cache) RentalService {
	return &rentalService{repo: repo, cache: c}
}

func (s *rentalService) Available(ctx context.Context, db *gorm.DB, rentalType string) ([]models.EventRental, error) {
	return s.repo.AvailableByType(db, rentalType)
}

func (s *rentalService) Featured(ctx context.Context, db *gorm.DB) ([]models.EventRental, error) {
	return cache.Remember(ctx, s.cache, cacheKeyFeaturedRentals, contentCacheTTL, func() ([]models.EventRental, error) {
		return s.repo.Featured(db)
	})
}

func (s *rentalService) GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.EventRental, error) {
	r, err := s.repo.FindBySlug(db, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Event rental")
		}
		return nil, apperrors.InternalError(err)
	}
	return r, nil
}

func (s *rentalService) CheckAvailability(ctx context.Context, db *gorm.DB, id uint) (*RentalAvailability, error) {
	r, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}
	return &RentalAvailability{ID: r.ID, Available: r.Available}, nil
}

func (s *rentalService) List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.EventRental], error) {
	return s.repo.Paginate(db, q, page, perPage)
}

func (s *rentalService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.EventRental, error) {
	r, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Event rental")
		}
		return nil, apperrors.InternalError(err)
	}
	return r, nil
}

func (s *rentalService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateEventRentalRequest) (*models.EventRental, error) {
	if err := ensureSlugFree(db, s.repo.Repository, req.Slug, 0); err != nil {
		return nil, err
	}
	r := &models.EventRental{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		RentalType:  req.RentalType,
		PricePerDay: req.PricePerDay,
		ImageURL:    req.ImageURL,
		Available:   true,
		SortOrder:   req.SortOrder,
	}
	if req.Available != nil {
		r.Available = *req.Available
	}
	if req.Featured != nil {
		r.Featured = *req.Featured
	}

	if err := s.repo.Create(db, r); err != nil {
		return nil, serviceError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyFeaturedRentals)
	return r, nil
}

func (s *rentalService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateEventRentalRequest) (*models.EventRental, error) {
	if req.Slug != nil {
		if err := ensureSlugFree(db, s.repo.Repository, *req.Slug, id); err != nil {
			return nil, err
		}
	}
	updates := req.ToUpdates()
	if len(updates) > 0 {
		if err := s.repo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("Event rental")
			}
			return nil, serviceError(err)
		}
	}
	cache.Forget(ctx, s.cache, cacheKeyFeaturedRentals)
	return s.Get(ctx, db, id)
}

func (s *rentalService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Event rental")
		}
		return apperrors.InternalError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyFeaturedRentals)
	return nil
}
