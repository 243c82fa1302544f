package handlers

// AppHandlers aggregates every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	TestimonialHandler *TestimonialHandler
	PartnerHandler     *PartnerHandler
	PortfolioHandler   *PortfolioHandler
	GalleryHandler     *GalleryHandler
	TeamHandler        *TeamHandler
	ServiceHandler     *ServiceHandler
	FAQHandler         *FAQHandler
	HeroHandler        *HeroHandler
	CompanyHandler     *CompanyHandler
	RentalHandler      *RentalHandler
	PageSectionHandler *PageSectionHandler
	UploadHandler      *UploadHandler
}
