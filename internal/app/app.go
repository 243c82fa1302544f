package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"eventcms_backend/internal/auth"
	"eventcms_backend/internal/cache"
	"eventcms_backend/internal/config"
	"eventcms_backend/internal/handlers"
	"eventcms_backend/internal/imageprocessor"
	"eventcms_backend/internal/logger"
	"eventcms_backend/internal/middleware"
	"eventcms_backend/internal/models"
	"eventcms_backend/internal/repositories"
	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/routes"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/storage"
	"eventcms_backend/internal/validator"
	"eventcms_backend/pkg/apperrors"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env != "production")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	switch cfg.Database.Driver {
	case "", "postgres":
		return gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
}

// SetupRouter builds the full gin engine with every dependency wired.
// Split from Run so tests can stand up the whole stack in-process.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	appCache := newCache(cfg)
	container := initializeServices(cfg, store, appCache)
	appHandlers := initializeHandlers(cfg, container)

	router := newGinRouter(cfg, gormDB)
	routes.RegisterRoutes(router, appHandlers, container.AuthService)

	// Local storage serves uploaded assets straight from disk; object
	// storage backends return absolute URLs instead.
	if local, ok := store.(*storage.LocalStorage); ok {
		router.Static("/uploads", local.BasePath())
	}

	return router
}

func newCache(cfg *config.Config) cache.Cache {
	if cfg.Cache.Backend == "redis" {
		c, err := cache.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		logger.Info("Cache initialized", "backend", "redis", "addr", cfg.Cache.RedisAddr)
		return c
	}
	logger.Info("Cache initialized", "backend", "memory")
	return cache.NewMemoryCache()
}

func initializeServices(cfg *config.Config, store storage.Storage, appCache cache.Cache) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	tokenRepo := repositories.NewAccessTokenRepository()
	testimonialRepo := repositories.NewTestimonialRepository()
	partnerRepo := repositories.NewPartnerRepository()
	teamRepo := repositories.NewTeamMemberRepository()
	portfolioRepo := repositories.NewPortfolioRepository()
	portfolioCategoryRepo := repositories.NewPortfolioCategoryRepository()
	galleryRepo := repositories.NewGalleryRepository()
	galleryCategoryRepo := repositories.NewGalleryCategoryRepository()
	serviceRepo := repositories.NewServiceRepository()
	faqRepo := repositories.NewFAQRepository()
	heroRepo := repositories.NewHeroSectionRepository()
	companyRepo := repositories.NewCompanyInformationRepository()
	rentalRepo := repositories.NewEventRentalRepository()
	pageSectionRepo := repositories.NewPageSectionRepository()

	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, tokenRepo, tokenTTL),
		TestimonialService: services.NewTestimonialService(testimonialRepo, appCache),
		PartnerService:     services.NewPartnerService(partnerRepo, appCache),
		PortfolioService:   services.NewPortfolioService(portfolioRepo, portfolioCategoryRepo, appCache),
		GalleryService:     services.NewGalleryService(galleryRepo, galleryCategoryRepo),
		TeamService:        services.NewTeamService(teamRepo, appCache),
		ServiceService:     services.NewServiceService(serviceRepo, appCache),
		FAQService:         services.NewFAQService(faqRepo, appCache),
		HeroService:        services.NewHeroService(heroRepo, appCache),
		CompanyService:     services.NewCompanyService(companyRepo, appCache),
		RentalService:      services.NewRentalService(rentalRepo, appCache),
		PageSectionService: services.NewPageSectionService(pageSectionRepo, appCache),
		UploadService:      services.NewUploadService(store, processor),
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)
	transformer := resources.NewTransformer(cfg.Storage.BaseURL)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService, transformer),
		UserHandler:        handlers.NewUserHandler(baseHandler, container.AuthService, transformer),
		TestimonialHandler: handlers.NewTestimonialHandler(baseHandler, container.TestimonialService, transformer),
		PartnerHandler:     handlers.NewPartnerHandler(baseHandler, container.PartnerService, transformer),
		PortfolioHandler:   handlers.NewPortfolioHandler(baseHandler, container.PortfolioService, transformer),
		GalleryHandler:     handlers.NewGalleryHandler(baseHandler, container.GalleryService, transformer),
		TeamHandler:        handlers.NewTeamHandler(baseHandler, container.TeamService, transformer),
		ServiceHandler:     handlers.NewServiceHandler(baseHandler, container.ServiceService, transformer),
		FAQHandler:         handlers.NewFAQHandler(baseHandler, container.FAQService, transformer),
		HeroHandler:        handlers.NewHeroHandler(baseHandler, container.HeroService, transformer),
		CompanyHandler:     handlers.NewCompanyHandler(baseHandler, container.CompanyService, transformer),
		RentalHandler:      handlers.NewRentalHandler(baseHandler, container.RentalService, transformer),
		PageSectionHandler: handlers.NewPageSectionHandler(baseHandler, container.PageSectionService, transformer),
		UploadHandler:      handlers.NewUploadHandler(baseHandler, container.UploadService),
	}
}

func newGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	router.Use(middleware.DB(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Auth.FirstAdminEmail
	adminPassword := cfg.Auth.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("First admin credentials not configured, skipping admin seeding")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
