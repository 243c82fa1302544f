package services

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"eventcms_backend/internal/cache"
	"eventcms_backend/internal/models"
	"eventcms_backend/internal/repositories"
	"eventcms_backend/internal/services/dto"
	"eventcms_backend/pkg/apperrors"
)

const (
	cacheKeyActiveTestimonials = "testimonials:active"
	cacheKeyTestimonialStats   = "testimonials:stats"
)

// TestimonialStatistics summarizes approved testimonials for the admin
// dashboard.
type TestimonialStatistics struct {
	Total         int64         `json:"total"`
	Active        int64         `json:"active"`
	Inactive      int64         `json:"inactive"`
	AverageRating float64       `json:"average_rating"`
	RatingCounts  map[int]int64 `json:"rating_counts"`
}

type TestimonialService interface {
	Active(ctx context.Context, db *gorm.DB) ([]models.Testimonial, error)
	List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.Testimonial], error)
	Get(ctx context.Context, db *gorm.DB, id uint) (*models.Testimonial, error)
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateTestimonialRequest) (*models.Testimonial, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateTestimonialRequest) (*models.Testimonial, error)
	Delete(ctx context.Context, db *gorm.DB, id uint) error
	Approve(ctx context.Context, db *gorm.DB, id uint) (*models.Testimonial, error)
	Reject(ctx context.Context, db *gorm.DB, id uint) (*models.Testimonial, error)
	Statistics(ctx context.Context, db *gorm.DB) (*TestimonialStatistics, error)
}

type testimonialService struct {
	repo  *repositories.TestimonialRepository
	cache cache.Cache
}

func NewTestimonialService(repo *repositories.TestimonialRepository, c cache.Cache) TestimonialService {
	return &testimonialService{repo: repo, cache: c}
}

// Active serves the public listing through the cache.
func (s *testimonialService) Active(ctx context.Context, db *gorm.DB) ([]models.Testimonial, error) {
	return cache.Remember(ctx, s.cache, cacheKeyActiveTestimonials, contentCacheTTL, func() ([]models.Testimonial, error) {
		return s.repo.Active(db)
	})
}

func (s *testimonialService) List(ctx context.Context, db *gorm.DB, q repositories.Query, page, perPage int) (*repositories.Page[models.Testimonial], error) {
	return s.repo.Paginate(db, q, page, perPage)
}

func (s *testimonialService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.Testimonial, error) {
	t, err := s.repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Testimonial")
		}
		return nil, apperrors.InternalError(err)
	}
	return t, nil
}

func (s *testimonialService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateTestimonialRequest) (*models.Testimonial, error) {
	t := &models.Testimonial{
		Name:     req.Name,
		Position: req.Position,
		Company:  req.Company,
		Content:  req.Content,
		Rating:   req.Rating,
		ImageURL: req.ImageURL,
	}
	if t.Rating == 0 {
		t.Rating = 5
	}
	if req.Status != nil {
		t.Status = *req.Status
	}

	if err := s.repo.Create(db, t); err != nil {
		return nil, serviceError(err)
	}
	s.invalidate(ctx)
	return t, nil
}

func (s *testimonialService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateTestimonialRequest) (*models.Testimonial, error) {
	updates := req.ToUpdates()
	if len(updates) > 0 {
		if err := s.repo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("Testimonial")
			}
			return nil, serviceError(err)
		}
	}
	s.invalidate(ctx)
	return s.Get(ctx, db, id)
}

func (s *testimonialService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Testimonial")
		}
		return apperrors.InternalError(err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *testimonialService) Approve(ctx context.Context, db *gorm.DB, id uint) (*models.Testimonial, error) {
	return s.setStatus(ctx, db, id, true)
}

func (s *testimonialService) Reject(ctx context.Context, db *gorm.DB, id uint) (*models.Testimonial, error) {
	return s.setStatus(ctx, db, id, false)
}

func (s *testimonialService) setStatus(ctx context.Context, db *gorm.DB, id uint, status bool) (*models.Testimonial, error) {
	if err := s.repo.Update(db, id, map[string]interface{}{"status": status}); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Testimonial")
		}
		return nil, apperrors.InternalError(err)
	}
	s.invalidate(ctx)
	return s.Get(ctx, db, id)
}

// Statistics is cached alongside the public listing and invalidated by
// the same mutations.
func (s *testimonialService) Statistics(ctx context.Context, db *gorm.DB) (*TestimonialStatistics, error) {
	return cache.Remember(ctx, s.cache, cacheKeyTestimonialStats, contentCacheTTL, func() (*TestimonialStatistics, error) {
		total, err := s.repo.Count(db, repositories.Query{})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		active, err := s.repo.Count(db, repositories.Query{}.Where("status = ?", true))
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		avg, err := s.repo.AverageRating(db)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		dist, err := s.repo.RatingDistribution(db)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		return &TestimonialStatistics{
			Total:         total,
			Active:        active,
			Inactive:      total - active,
			AverageRating: math.Round(avg*100) / 100,
			RatingCounts:  dist,
		}, nil
	})
}

func (s *testimonialService) invalidate(ctx context.Context) {
	cache.Forget(ctx, s.cache, cacheKeyActiveTestimonials, cacheKeyTestimonialStats)
}
