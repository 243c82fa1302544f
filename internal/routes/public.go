package routes

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/handlers"
)

func registerPublicRoutes(api *gin.RouterGroup, h *handlers.AppHandlers) {
	public := api.Group("/public")

	public.GET("/testimonials", h.TestimonialHandler.Active)

	public.GET("/partners", h.PartnerHandler.Active)
	public.GET("/partners/grouped", h.PartnerHandler.Grouped)
	public.GET("/partners/type/:type", h.PartnerHandler.ByType)

	public.GET("/portfolios", h.PortfolioHandler.PublicIndex)
	public.GET("/portfolios/featured", h.PortfolioHandler.Featured)
	public.GET("/portfolios/slug/:slug", h.PortfolioHandler.ShowBySlug)
	public.GET("/portfolios/categories", h.PortfolioHandler.PublicCategories)

	public.GET("/galleries", h.GalleryHandler.PublicIndex)
	public.GET("/galleries/categories", h.GalleryHandler.PublicCategories)

	public.GET("/team", h.TeamHandler.Active)
	public.GET("/team/featured", h.TeamHandler.Featured)

	public.GET("/services", h.ServiceHandler.Active)
	public.GET("/services/slug/:slug", h.ServiceHandler.ShowBySlug)

	public.GET("/faqs", h.FAQHandler.Active)

	public.GET("/hero-sections", h.HeroHandler.Active)

	public.GET("/company", h.CompanyHandler.Active)

	public.GET("/rentals", h.RentalHandler.Available)
	public.GET("/rentals/featured", h.RentalHandler.Featured)
	public.GET("/rentals/slug/:slug", h.RentalHandler.ShowBySlug)
	public.GET("/rentals/:id/availability", h.RentalHandler.CheckAvailability)

	public.GET("/page-sections/:page", h.PageSectionHandler.ForPage)
}
