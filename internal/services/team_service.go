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

const cacheKeyActiveTeam = "team:active"

type TeamService interface {
	Active(ctx context.Context, db *gorm.DB) ([]models.TeamMember, error)
	Featured(ctx context.Context, db *gorm.DB) ([]models.TeamMember, error)
	List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.TeamMember], error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.TeamMember, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateTeamMemberRequest) (*models.TeamMember, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateTeamMemberRequest) (*models.TeamMember, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}

type teamService struct {
	repo  *repositories.TeamMemberRepository
	cache cache.Cache
}

func NewTeamService(repo *repositories.TeamMemberRepository, c cache.Cache) TeamService {
	return &teamService{repo: repo, cache: c}
}

func (s *teamService) Active(ctx context.Context, db *gorm.DB) ([]models.TeamMember, error) {
	return cache.Remember(ctx, s.cache, cacheKeyActiveTeam, contentCacheTTL, func() ([]models.TeamMember, error) {
		return s.repo.Active(db)
	})
}

func (s *teamService) Featured(ctx context.Context, db *gorm.DB) ([]models.TeamMember, error) {
	return s.repo.Featured(db)
}

func (s *teamService) List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.TeamMember], error) {
	return s.repo.Paginate(db, q, page, perPage)
}

func (s *teamService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.TeamMember, error) {
	m, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Team member")
		}
		return nil, apperrors.InternalError(err)
	}
	return m, nil
}

func (s *teamService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateTeamMemberRequest) (*models.TeamMember, error) {
	m := &models.TeamMember{
		Name:         req.Name,
		Position:     req.Position,
		Bio:          req.Bio,
		Email:        req.Email,
		Phone:        req.Phone,
		PhotoURL:     req.PhotoURL,
		LinkedinURL:  req.LinkedinURL,
		InstagramURL: req.InstagramURL,
		FacebookURL:  req.FacebookURL,
		TwitterURL:   req.TwitterURL,
		Skills:       jsonList(req.Skills),
		SortOrder:    req.SortOrder,
		IsActive:     true,
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		m.IsFeatured = *req.IsFeatured
	}

	if err := s.repo.Create(db, m); err != nil {
		return nil, serviceError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveTeam)
	return m, nil
}

func (s *teamService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateTeamMemberRequest) (*models.TeamMember, error) {
	updates := req.ToUpdates()
	if req.Skills != nil {
		updates["skills"] = jsonList(*req.Skills)
	}

	if len(updates) > 0 {
		if err := s.repo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("Team member")
			}
			return nil, serviceError(err)
		}
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveTeam)
	return s.Get(ctx, db, id)
}

func (s *teamService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Team member")
		}
		return apperrors.InternalError(err)
	}
	cache.Forget(ctx, s.cache, cacheKeyActiveTeam)
	return nil
}
