package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eventcms_backend/internal/cache"
	"eventcms_backend/internal/repositories"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/services/dto"
	"eventcms_backend/pkg/apperrors"
	"eventcms_backend/test/helpers"
)

func newTestimonialService(t *testing.T) (services.TestimonialService, *gorm.DB) {
	t.Helper()
	db := helpers.NewTestDB(t)
	c := cache.NewMemoryCache()
	t.Cleanup(c.Close)
	svc := services.NewTestimonialService(repositories.NewTestimonialRepository(), c)
	return svc, db
}

func TestTestimonialCreateAndApprove(t *testing.T) {
	svc, db := newTestimonialService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, db, &dto.CreateTestimonialRequest{
		Name:    "Aigerim",
		Content: "Flawless wedding organization",
		Rating:  5,
	})
	require.NoError(t, err)
	assert.False(t, created.Status, "new testimonials start unapproved")
	assert.Equal(t, 5, created.Rating)

	active, err := svc.Active(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = svc.Approve(ctx, db, created.ID)
	require.NoError(t, err)

	active, err = svc.Active(ctx, db)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Aigerim", active[0].Name)
}

func TestTestimonialActiveListIsInvalidatedByMutations(t *testing.T) {
	svc, db := newTestimonialService(t)
	ctx := context.Background()

	status := true
	created, err := svc.Create(ctx, db, &dto.CreateTestimonialRequest{
		Name:    "Daniyar",
		Content: "Great corporate event",
		Status:  &status,
	})
	require.NoError(t, err)

	// Prime the cache.
	active, err := svc.Active(ctx, db)
	require.NoError(t, err)
	require.Len(t, active, 1)

	_, err = svc.Reject(ctx, db, created.ID)
	require.NoError(t, err)

	active, err = svc.Active(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, active, "rejection must evict the cached listing")
}

func TestTestimonialStatistics(t *testing.T) {
	svc, db := newTestimonialService(t)
	ctx := context.Background()

	approved := true
	for _, rating := range []int{5, 5, 4} {
		_, err := svc.Create(ctx, db, &dto.CreateTestimonialRequest{
			Name:    "Client",
			Content: "Review",
			Rating:  rating,
			Status:  &approved,
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, db, &dto.CreateTestimonialRequest{
		Name:    "Pending client",
		Content: "Pending review",
		Rating:  1,
	})
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(3), stats.Active)
	assert.Equal(t, int64(1), stats.Inactive)
	assert.InDelta(t, 4.67, stats.AverageRating, 0.001)
	assert.Equal(t, int64(2), stats.RatingCounts[5])
	assert.Equal(t, int64(1), stats.RatingCounts[4])
}

func TestTestimonialStatisticsCacheEviction(t *testing.T) {
	svc, db := newTestimonialService(t)
	ctx := context.Background()

	stats, err := svc.Statistics(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)

	approved := true
	_, err = svc.Create(ctx, db, &dto.CreateTestimonialRequest{
		Name:    "New client",
		Content: "Review",
		Rating:  3,
		Status:  &approved,
	})
	require.NoError(t, err)

	stats, err = svc.Statistics(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total, "create must evict cached statistics")
}

func TestTestimonialGetMissingReturns404(t *testing.T) {
	svc, db := newTestimonialService(t)

	_, err := svc.Get(context.Background(), db, 12345)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestTestimonialPartialUpdate(t *testing.T) {
	svc, db := newTestimonialService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, db, &dto.CreateTestimonialRequest{
		Name:     "Zarina",
		Position: "CEO",
		Content:  "Excellent",
		Rating:   4,
	})
	require.NoError(t, err)

	newName := "Zarina K."
	updated, err := svc.Update(ctx, db, created.ID, &dto.UpdateTestimonialRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Zarina K.", updated.Name)
	assert.Equal(t, "CEO", updated.Position, "absent fields must stay untouched")
	assert.Equal(t, 4, updated.Rating)
}

