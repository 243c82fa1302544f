package repositories

import (
	"gorm.io/gorm"

	"eventcms_backend/internal/models"
)

type TestimonialRepository struct {
	Repository[models.Testimonial]
}

func NewTestimonialRepository() *TestimonialRepository {
	return &TestimonialRepository{
		Repository: NewRepositoryOrdered[models.Testimonial]("created_at DESC"),
	}
}

// Active returns approved testimonials, newest first.
func (r *TestimonialRepository) Active(db *gorm.DB) ([]models.Testimonial, error) {
	return r.FindAll(db, Query{}.Where("status = ?", true))
}

// RatingDistribution counts approved testimonials per rating value.
func (r *TestimonialRepository) RatingDistribution(db *gorm.DB) (map[int]int64, error) {
	type row struct {
		Rating int
		Count  int64
	}
	var rows []row
	err := db.Model(&models.Testimonial{}).
		Select("rating, COUNT(*) as count").
		Where("status = ?", true).
		Group("rating").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	dist := make(map[int]int64, len(rows))
	for _, r := range rows {
		dist[r.Rating] = r.Count
	}
	return dist, nil
}

// AverageRating returns the mean rating over approved testimonials, or 0
// when none exist.
func (r *TestimonialRepository) AverageRating(db *gorm.DB) (float64, error) {
	var avg *float64
	err := db.Model(&models.Testimonial{}).
		Select("AVG(rating)").
		Where("status = ?", true).
		Scan(&avg).Error
	if err != nil {
		return 0, translateError(err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
