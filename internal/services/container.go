package services

// ServiceContainer holds every application service for wiring.
type ServiceContainer struct {
	AuthService        AuthService
	TestimonialService TestimonialService
	PartnerService     PartnerService
	PortfolioService   PortfolioService
	GalleryService     GalleryService
	TeamService        TeamService
	ServiceService     ServiceService
	FAQService         FAQService
	HeroService        HeroService
	CompanyService     CompanyService
	RentalService      RentalService
	PageSectionService PageSectionService
	UploadService      UploadService
}
