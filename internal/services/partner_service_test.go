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

func newPartnerService(t *testing.T) (services.PartnerService, *gorm.DB) {
	t.Helper()
	db := helpers.NewTestDB(t)
	c := cache.NewMemoryCache()
	t.Cleanup(c.Close)
	svc := services.NewPartnerService(repositories.NewPartnerRepository(), c)
	return svc, db
}

func TestPartnerCreateDefaultsToActive(t *testing.T) {
	svc, db := newPartnerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, db, &dto.CreatePartnerRequest{
		Name: "Almaty Arena",
		Slug: "almaty-arena",
	})
	require.NoError(t, err)
	assert.True(t, created.Status)

	active, err := svc.Active(ctx, db)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Almaty Arena", active[0].Name)
}

func TestPartnerCreateExplicitlyInactive(t *testing.T) {
	svc, db := newPartnerService(t)
	ctx := context.Background()

	inactive := false
	created, err := svc.Create(ctx, db, &dto.CreatePartnerRequest{
		Name:   "Hidden Partner",
		Slug:   "hidden-partner",
		Status: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, created.Status)

	// The false must survive the round trip to the database, not be
	// silently replaced by a column default.
	reloaded, err := svc.Get(ctx, db, created.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Status)

	active, err := svc.Active(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestPartnerSlugTakenOnCreate(t *testing.T) {
	svc, db := newPartnerService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, db, &dto.CreatePartnerRequest{Name: "Acme", Slug: "acme"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, db, &dto.CreatePartnerRequest{Name: "Acme Again", Slug: "acme"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.HTTPCode)

	fields, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, fields, "slug")
}

func TestPartnerSlugTakenOnUpdate(t *testing.T) {
	svc, db := newPartnerService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, db, &dto.CreatePartnerRequest{Name: "First", Slug: "first"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, db, &dto.CreatePartnerRequest{Name: "Second", Slug: "second"})
	require.NoError(t, err)

	// Re-sending the current slug is not a conflict.
	ownSlug := "second"
	_, err = svc.Update(ctx, db, second.ID, &dto.UpdatePartnerRequest{Slug: &ownSlug})
	require.NoError(t, err)

	takenSlug := first.Slug
	_, err = svc.Update(ctx, db, second.ID, &dto.UpdatePartnerRequest{Slug: &takenSlug})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.HTTPCode)
}
