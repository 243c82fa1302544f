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

const cacheKeyActiveCompany = "company:active"

type CompanyService interface {
	Active(ctx context.Context, db *gorm.DB) (*models.CompanyInformation, error)
	List(ctx context.Context, db *gorm.DB) ([]models.CompanyInformation, error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.CompanyInformation, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateCompanyInformationRequest) (*models.CompanyInformation, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateCompanyInformationRequest) (*models.CompanyInformation, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}

type companyService struct {
	repo  *repositories.CompanyInformationRepository
	cache cache.Cache
}

func NewCompanyService(repo *repositories.CompanyInformationRepository, c cache.Cache) CompanyService {
	return &companyService{repo: repo, cache: c}
}

func (s *companyService) Active(ctx context.Context, db *gorm.DB) (*models.CompanyInformation, error) {
	info, err := cache.Remember(ctx, s.cache, cacheKeyActiveCompany, contentCacheTTL, func() (*models.CompanyInformation, error) {
		return s.repo.ActiveOne(db)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Company information")
		}
		return nil, serviceError(err)
	}
	return info, nil
}

func (s *companyService) List(ctx context.Context, db *gorm.DB) ([]models.CompanyInformation, error) {
	return s.repo.FindAll(db, repositories.Query{})
}

func (s *companyService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.CompanyInformation, error) {
	info, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Company information")
		}
		return nil, apperrors.InternalError(err)
	}
	return info, nil
}

func (s *companyService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateCompanyInformationRequest) (*models.CompanyInformation, error) {
	info := &models.CompanyInformation{
		CompanyName: req.CompanyName,
		Tagline:     req.Tagline,
		About:       req.About,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		LogoURL:     req.LogoURL,
		FaviconURL:  req.FaviconURL,
		SocialLinks: jsonMap(req.SocialLinks),
		IsActive:    true,
	}
	if req.IsActive != nil {
		info.IsActive = *req.IsActive
	}

	if err := s.repo.Create(db, info); err != nil {
		return nil, serviceError(err)
	}
	// A single profile is active at a time.
	if info.IsActive {
		if err := s.repo.DeactivateOthers(db, info.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveCompany)
	return info, nil
}

func (s *companyService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateCompanyInformationRequest) (*models.CompanyInformation, error) {
	updates := req.ToUpdates()
	if req.SocialLinks != nil {
		updates["social_links"] = jsonMap(*req.SocialLinks)
	}

	if len(updates) > 0 {
		if err := s.repo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("Company information")
			}
			return nil, serviceError(err)
		}
	}
	if req.IsActive != nil && *req.IsActive {
		if err := s.repo.DeactivateOthers(db, id); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveCompany)
	return s.Get(ctx, db, id)
}

func (s *companyService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Company information")
		}
		return apperrors.InternalError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveCompany)
	return nil
}
