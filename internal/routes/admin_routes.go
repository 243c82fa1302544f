package routes

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/handlers"
	"eventcms_backend/internal/middleware"
)

func registerAdminRoutes(admin *gin.RouterGroup, h *handlers.AppHandlers) {
	testimonials := admin.Group("/testimonials")
	{
		testimonials.GET("", h.TestimonialHandler.List)
		testimonials.GET("/active", h.TestimonialHandler.Active)
		testimonials.GET("/statistics", h.TestimonialHandler.Statistics)
		testimonials.GET("/:id", h.TestimonialHandler.Get)
		testimonials.POST("", h.TestimonialHandler.Create)
		testimonials.PUT("/:id", h.TestimonialHandler.Update)
		testimonials.DELETE("/:id", h.TestimonialHandler.Delete)
		testimonials.POST("/:id/approve", h.TestimonialHandler.Approve)
		testimonials.POST("/:id/reject", h.TestimonialHandler.Reject)
	}

	partners := admin.Group("/partners")
	{
		partners.GET("", h.PartnerHandler.List)
		partners.GET("/:id", h.PartnerHandler.Get)
		partners.POST("", h.PartnerHandler.Create)
		partners.PUT("/:id", h.PartnerHandler.Update)
		partners.DELETE("/:id", h.PartnerHandler.Delete)
	}

	portfolios := admin.Group("/portfolios")
	{
		portfolios.GET("", h.PortfolioHandler.List)
		portfolios.GET("/:id", h.PortfolioHandler.Get)
		portfolios.POST("", h.PortfolioHandler.Create)
		portfolios.PUT("/:id", h.PortfolioHandler.Update)
		portfolios.DELETE("/:id", h.PortfolioHandler.Delete)
	}

	portfolioCategories := admin.Group("/portfolio-categories")
	{
		portfolioCategories.GET("", h.PortfolioHandler.ListCategories)
		portfolioCategories.POST("", h.PortfolioHandler.CreateCategory)
		portfolioCategories.PUT("/:id", h.PortfolioHandler.UpdateCategory)
		portfolioCategories.DELETE("/:id", h.PortfolioHandler.DeleteCategory)
	}

	galleries := admin.Group("/galleries")
	{
		galleries.GET("", h.GalleryHandler.List)
		galleries.GET("/:id", h.GalleryHandler.Get)
		galleries.POST("", h.GalleryHandler.Create)
		galleries.PUT("/:id", h.GalleryHandler.Update)
		galleries.DELETE("/:id", h.GalleryHandler.Delete)
	}

	galleryCategories := admin.Group("/gallery-categories")
	{
		galleryCategories.GET("", h.GalleryHandler.ListCategories)
		galleryCategories.POST("", h.GalleryHandler.CreateCategory)
		galleryCategories.PUT("/:id", h.GalleryHandler.UpdateCategory)
		galleryCategories.DELETE("/:id", h.GalleryHandler.DeleteCategory)
	}

	team := admin.Group("/team")
	{
		team.GET("", h.TeamHandler.List)
		team.GET("/:id", h.TeamHandler.Get)
		team.POST("", h.TeamHandler.Create)
		team.PUT("/:id", h.TeamHandler.Update)
		team.DELETE("/:id", h.TeamHandler.Delete)
	}

	services := admin.Group("/services")
	{
		services.GET("", h.ServiceHandler.List)
		services.GET("/:id", h.ServiceHandler.Get)
		services.POST("", h.ServiceHandler.Create)
		services.PUT("/:id", h.ServiceHandler.Update)
		services.DELETE("/:id", h.ServiceHandler.Delete)
	}

	faqs := admin.Group("/faqs")
	{
		faqs.GET("", h.FAQHandler.List)
		faqs.GET("/:id", h.FAQHandler.Get)
		faqs.POST("", h.FAQHandler.Create)
		faqs.PUT("/:id", h.FAQHandler.Update)
		faqs.DELETE("/:id", h.FAQHandler.Delete)
	}

	heroSections := admin.Group("/hero-sections")
	{
		heroSections.GET("", h.HeroHandler.List)
		heroSections.GET("/:id", h.HeroHandler.Get)
		heroSections.POST("", h.HeroHandler.Create)
		heroSections.PUT("/:id", h.HeroHandler.Update)
		heroSections.DELETE("/:id", h.HeroHandler.Delete)
	}

	company := admin.Group("/company")
	{
		company.GET("", h.CompanyHandler.List)
		company.GET("/:id", h.CompanyHandler.Get)
		company.POST("", h.CompanyHandler.Create)
		company.PUT("/:id", h.CompanyHandler.Update)
		company.DELETE("/:id", h.CompanyHandler.Delete)
	}

	rentals := admin.Group("/rentals")
	{
		rentals.GET("", h.RentalHandler.List)
		rentals.GET("/:id", h.RentalHandler.Get)
		rentals.POST("", h.RentalHandler.Create)
		rentals.PUT("/:id", h.RentalHandler.Update)
		rentals.DELETE("/:id", h.RentalHandler.Delete)
	}

	pageSections := admin.Group("/page-sections")
	{
		pageSections.GET("", h.PageSectionHandler.List)
		pageSections.GET("/:id", h.PageSectionHandler.Get)
		pageSections.POST("", h.PageSectionHandler.Create)
		pageSections.PUT("/:id", h.PageSectionHandler.Update)
		pageSections.DELETE("/:id", h.PageSectionHandler.Delete)
	}

	// User management is admin-role only; everything above is open to
	// any authenticated editor.
	users := admin.Group("/users", middleware.RequireAdmin())
	{
		users.GET("", h.UserHandler.List)
		users.GET("/:id", h.UserHandler.Get)
		users.POST("", h.UserHandler.Create)
		users.PUT("/:id", h.UserHandler.Update)
		users.DELETE("/:id", h.UserHandler.Delete)
	}

	uploads := admin.Group("/uploads")
	{
		uploads.GET("/types", h.UploadHandler.AssetTypes)
		uploads.POST("/:type", h.UploadHandler.Upload)
		uploads.DELETE("", h.UploadHandler.Delete)
	}
}
