package repositories_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventcms_backend/internal/models"
	"eventcms_backend/internal/repositories"
	"eventcms_backend/test/helpers"
)

func TestRepositoryCRUD(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPartnerRepository()

	p := &models.Partner{Name: "Acme Events", Slug: "acme-events", Status: true}
	require.NoError(t, repo.Create(db, p))
	require.NotZero(t, p.ID)

	got, err := repo.FindByID(db, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Events", got.Name)

	err = repo.Update(db, p.ID, map[string]interface{}{"name": "Acme Productions"})
	require.NoError(t, err)

	got, err = repo.FindByID(db, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Productions", got.Name)

	require.NoError(t, repo.Delete(db, p.ID))

	_, err = repo.FindByID(db, p.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRepositoryNotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPartnerRepository()

	_, err := repo.FindByID(db, 9999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = repo.Update(db, 9999, map[string]interface{}{"name": "ghost"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = repo.Delete(db, 9999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRepositoryPaginate(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPartnerRepository()

	for i := 1; i <= 7; i++ {
		p := &models.Partner{
			Name:      fmt.Sprintf("Partner %d", i),
			Slug:      fmt.Sprintf("partner-%d", i),
			Status:    true,
			SortOrder: i,
		}
		require.NoError(t, repo.Create(db, p))
	}

	page, err := repo.Paginate(db, repositories.Query{}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), page.Total)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 3, page.LastPage)
	assert.Equal(t, 1, page.From)
	assert.Equal(t, 3, page.To)
	assert.Equal(t, "Partner 1", page.Items[0].Name)

	page, err = repo.Paginate(db, repositories.Query{}, 3, 3)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 7, page.From)
	assert.Equal(t, 7, page.To)

	// Pages past the end come back empty with zeroed bounds.
	page, err = repo.Paginate(db, repositories.Query{}, 5, 3)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.From)
	assert.Equal(t, 0, page.To)
}

func TestRepositoryPaginateNormalizesInput(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPartnerRepository()

	page, err := repo.Paginate(db, repositories.Query{}, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 15, page.PerPage)
	assert.Equal(t, 1, page.LastPage)
}

func TestQueryIsValueType(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewPartnerRepository()

	require.NoError(t, repo.Create(db, &models.Partner{Name: "A", Slug: "a", Status: true, PartnerType: "venue"}))
	require.NoError(t, repo.Create(db, &models.Partner{Name: "B", Slug: "b", Status: true, PartnerType: "catering"}))
	require.NoError(t, repo.Create(db, &models.Partner{Name: "C", Slug: "c", Status: false, PartnerType: "venue"}))

	base := repositories.Query{}.Where("status = ?", true)
	venues := base.Where("partner_type = ?", "venue")

	// Deriving venues must not mutate base.
	all, err := repo.FindAll(db, base)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := repo.FindAll(db, venues)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}

func TestTestimonialStatisticsQueries(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewTestimonialRepository()

	ratings := []struct {
		rating int
		status bool
	}{
		{5, true}, {5, true}, {4, true}, {3, true}, {1, false},
	}
	for i, r := range ratings {
		require.NoError(t, repo.Create(db, &models.Testimonial{
			Name:    fmt.Sprintf("Client %d", i),
			Content: "Great event",
			Rating:  r.rating,
			Status:  r.status,
		}))
	}

	active, err := repo.Active(db)
	require.NoError(t, err)
	assert.Len(t, active, 4)

	avg, err := repo.AverageRating(db)
	require.NoError(t, err)
	assert.InDelta(t, 4.25, avg, 0.001)

	dist, err := repo.RatingDistribution(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist[5])
	assert.Equal(t, int64(1), dist[4])
	assert.Equal(t, int64(1), dist[3])
	_, hasRejected := dist[1]
	assert.False(t, hasRejected)
}

func TestAverageRatingEmptyTable(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewTestimonialRepository()

	avg, err := repo.AverageRating(db)
	require.NoError(t, err)
	assert.Zero(t, avg)
}
