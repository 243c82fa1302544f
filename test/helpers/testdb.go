package helpers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"eventcms_backend/internal/models"
)

// NewTestDB opens an in-memory SQLite database with the full schema
// migrated. Each call returns an isolated database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.AccessToken{},
		&models.Testimonial{},
		&models.Partner{},
		&models.TeamMember{},
		&models.PortfolioCategory{},
		&models.Portfolio{},
		&models.GalleryCategory{},
		&models.Gallery{},
		&models.Service{},
		&models.FAQ{},
		&models.HeroSection{},
		&models.CompanyInformation{},
		&models.EventRental{},
		&models.PageSection{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}
