package resources

import (
	"eventcms_backend/internal/models"
	"eventcms_backend/internal/services"
)

type TestimonialResource struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Company   string `json:"company"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	ImageURL  string `json:"image_url"`
	Status    bool   `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (t *Transformer) Testimonial(m *models.Testimonial) TestimonialResource {
	return TestimonialResource{
		ID:        m.ID,
		Name:      m.Name,
		Position:  m.Position,
		Company:   m.Company,
		Content:   m.Content,
		Rating:    m.Rating,
		ImageURL:  t.AbsoluteURL(m.ImageURL),
		Status:    m.Status,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func (t *Transformer) Testimonials(items []models.Testimonial) []TestimonialResource {
	out := make([]TestimonialResource, len(items))
	for i := range items {
		out[i] = t.Testimonial(&items[i])
	}
	return out
}

type PartnerResource struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	WebsiteURL  string `json:"website_url"`
	PartnerType string `json:"partner_type"`
	Status      bool   `json:"status"`
	SortOrder   int    `json:"sort_order"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (t *Transformer) Partner(m *models.Partner) PartnerResource {
	return PartnerResource{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		LogoURL:     t.AbsoluteURL(m.LogoURL),
		WebsiteURL:  m.WebsiteURL,
		PartnerType: m.PartnerType,
		Status:      m.Status,
		SortOrder:   m.SortOrder,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func (t *Transformer) Partners(items []models.Partner) []PartnerResource {
	out := make([]PartnerResource, len(items))
	for i := range items {
		out[i] = t.Partner(&items[i])
	}
	return out
}

// PartnersGrouped preserves the service-level grouping by partner type.
func (t *Transformer) PartnersGrouped(groups map[string][]models.Partner) map[string][]PartnerResource {
	out := make(map[string][]PartnerResource, len(groups))
	for key, items := range groups {
		out[key] = t.Partners(items)
	}
	return out
}

type TeamMemberResource struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Position     string   `json:"position"`
	Bio          string   `json:"bio"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	PhotoURL     string   `json:"photo_url"`
	LinkedinURL  string   `json:"linkedin_url"`
	InstagramURL string   `json:"instagram_url"`
	FacebookURL  string   `json:"facebook_url"`
	TwitterURL   string   `json:"twitter_url"`
	Skills       []string `json:"skills"`
	SortOrder    int      `json:"sort_order"`
	IsActive     bool     `json:"is_active"`
	IsFeatured   bool     `json:"is_featured"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func (t *Transformer) TeamMember(m *models.TeamMember) TeamMemberResource {
	return TeamMemberResource{
		ID:           m.ID,
		Name:         m.Name,
		Position:     m.Position,
		Bio:          m.Bio,
		Email:        m.Email,
		Phone:        m.Phone,
		PhotoURL:     t.AbsoluteURL(m.PhotoURL),
		LinkedinURL:  m.LinkedinURL,
		InstagramURL: m.InstagramURL,
		FacebookURL:  m.FacebookURL,
		TwitterURL:   m.TwitterURL,
		Skills:       decodeList(m.Skills),
		SortOrder:    m.SortOrder,
		IsActive:     m.IsActive,
		IsFeatured:   m.IsFeatured,
		CreatedAt:    formatTime(m.CreatedAt),
		UpdatedAt:    formatTime(m.UpdatedAt),
	}
}

func (t *Transformer) TeamMembers(items []models.TeamMember) []TeamMemberResource {
	out := make([]TeamMemberResource, len(items))
	for i := range items {
		out[i] = t.TeamMember(&items[i])
	}
	return out
}

type CategoryResource struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
	SortOrder   int    `json:"sort_order"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (t *Transformer) PortfolioCategory(m *models.PortfolioCategory) CategoryResource {
	return CategoryResource{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Status:      m.Status,
		SortOrder:   m.SortOrder,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func (t *Transformer) PortfolioCategories(items []models.PortfolioCategory) []CategoryResource {
	out := make([]CategoryResource, len(items))
	for i := range items {
		out[i] = t.PortfolioCategory(&items[i])
	}
	return out
}

func (t *Transformer) GalleryCategory(m *models.GalleryCategory) CategoryResource {
	return CategoryResource{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Status:      m.Status,
		SortOrder:   m.SortOrder,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func (t *Transformer) GalleryCategories(items []models.GalleryCategory) []CategoryResource {
	out := make([]CategoryResource, len(items))
	for i := range items {
		out[i] = t.GalleryCategory(&items[i])
	}
	return out
}

type PortfolioResource struct {
	ID               uint              `json:"id"`
	Title            string            `json:"title"`
	Slug             string            `json:"slug"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"short_description"`
	ClientName       string            `json:"client_name"`
	EventDate        *string           `json:"event_date"`
	EventLocation    string            `json:"event_location"`
	Category         *CategoryResource `json:"category"`
	Images           []string          `json:"images"`
	FeaturedImage    string            `json:"featured_image"`
	Featured         bool              `json:"featured"`
	Completed        bool              `json:"completed"`
	Status           bool              `json:"status"`
	SortOrder        int               `json:"sort_order"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at"`
}

func (t *Transformer) Portfolio(m *models.Portfolio) PortfolioResource {
	res := PortfolioResource{
		ID:               m.ID,
		Title:            m.Title,
		Slug:             m.Slug,
		Description:      m.Description,
		ShortDescription: m.ShortDescription,
		ClientName:       m.ClientName,
		EventDate:        formatTimePtr(m.EventDate),
		EventLocation:    m.EventLocation,
		Images:           t.absoluteURLs(decodeList(m.Images)),
		FeaturedImage:    t.AbsoluteURL(m.FeaturedImage),
		Featured:         m.Featured,
		Completed:        m.Completed,
		Status:           m.Status,
		SortOrder:        m.SortOrder,
		CreatedAt:        formatTime(m.CreatedAt),
		UpdatedAt:        formatTime(m.UpdatedAt),
	}
	if m.Category != nil {
		c := t.PortfolioCategory(m.Category)
		res.Category = &c
	}
	return res
}

func (t *Transformer) Portfolios(items []models.Portfolio) []PortfolioResource {
	out := make([]PortfolioResource, len(items))
	for i := range items {
		out[i] = t.Portfolio(&items[i])
	}
	return out
}

type GalleryResource struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    *CategoryResource `json:"category"`
	Images      []string          `json:"images"`
	CoverImage  string            `json:"cover_image"`
	EventDate   *string           `json:"event_date"`
	Status      bool              `json:"status"`
	SortOrder   int               `json:"sort_order"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

func (t *Transformer) Gallery(m *models.Gallery) GalleryResource {
	res := GalleryResource{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Images:      t.absoluteURLs(decodeList(m.Images)),
		CoverImage:  t.AbsoluteURL(m.CoverImage),
		EventDate:   formatTimePtr(m.EventDate),
		Status:      m.Status,
		SortOrder:   m.SortOrder,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
	if m.Category != nil {
		c := t.GalleryCategory(m.Category)
		res.Category = &c
	}
	return res
}

func (t *Transformer) Galleries(items []models.Gallery) []GalleryResource {
	out := make([]GalleryResource, len(items))
	for i := range items {
		out[i] = t.Gallery(&items[i])
	}
	return out
}

type ServiceResource struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	ImageURL    string   `json:"image_url"`
	Features    []string `json:"features"`
	Status      bool     `json:"status"`
	SortOrder   int      `json:"sort_order"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func (t *Transformer) Service(m *models.Service) ServiceResource {
	return ServiceResource{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
		Icon:        m.Icon,
		ImageURL:    t.AbsoluteURL(m.ImageURL),
		Features:    decodeList(m.Features),
		Status:      m.Status,
		SortOrder:   m.SortOrder,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func (t *Transformer) Services(items []models.Service) []ServiceResource {
	out := make([]ServiceResource, len(items))
	for i := range items {
		out[i] = t.Service(&items[i])
	}
	return out
}

type FAQResource struct {
	ID        uint   `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	Status    bool   `json:"status"`
	SortOrder int    `json:"sort_order"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (t *Transformer) FAQ(m *models.FAQ) FAQResource {
	return FAQResource{
		ID:        m.ID,
		Question:  m.Question,
		Answer:    m.Answer,
		Category:  m.Category,
		Status:    m.Status,
		SortOrder: m.SortOrder,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func (t *Transformer) FAQs(items []models.FAQ) []FAQResource {
	out := make([]FAQResource, len(items))
	for i := range items {
		out[i] = t.FAQ(&items[i])
	}
	return out
}

type HeroSectionResource struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	BackgroundImage string `json:"background_image"`
	CTAText         string `json:"cta_text"`
	CTALink         string `json:"cta_link"`
	IsActive        bool   `json:"is_active"`
	SortOrder       int    `json:"sort_order"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func (t *Transformer) HeroSection(m *models.HeroSection) HeroSectionResource {
	return HeroSectionResource{
		ID:              m.ID,
		Title:           m.Title,
		Subtitle:        m.Subtitle,
		Description:     m.Description,
		BackgroundImage: t.AbsoluteURL(m.BackgroundImage),
		CTAText:         m.CTAText,
		CTALink:         m.CTALink,
		IsActive:        m.IsActive,
		SortOrder:       m.SortOrder,
		CreatedAt:       formatTime(m.CreatedAt),
		UpdatedAt:       formatTime(m.UpdatedAt),
	}
}

func (t *Transformer) HeroSections(items []models.HeroSection) []HeroSectionResource {
	out := make([]HeroSectionResource, len(items))
	for i := range items {
		out[i] = t.HeroSection(&items[i])
	}
	return out
}

type CompanyInformationResource struct {
	ID          uint              `json:"id"`
	CompanyName string            `json:"company_name"`
	Tagline     string            `json:"tagline"`
	About       string            `json:"about"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Address     string            `json:"address"`
	LogoURL     string            `json:"logo_url"`
	FaviconURL  string            `json:"favicon_url"`
	SocialLinks map[string]string `json:"social_links"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

func (t *Transformer) CompanyInformation(m *models.CompanyInformation) CompanyInformationResource {
	return CompanyInformationResource{
		ID:          m.ID,
		CompanyName: m.CompanyName,
		Tagline:     m.Tagline,
		About:       m.About,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		LogoURL:     t.AbsoluteURL(m.LogoURL),
		FaviconURL:  t.AbsoluteURL(m.FaviconURL),
		SocialLinks: decodeMap(m.SocialLinks),
		IsActive:    m.IsActive,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func (t *Transformer) CompanyInformations(items []models.CompanyInformation) []CompanyInformationResource {
	out := make([]CompanyInformationResource, len(items))
	for i := range items {
		out[i] = t.CompanyInformation(&items[i])
	}
	return out
}

type EventRentalResource struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	RentalType  string  `json:"rental_type"`
	PricePerDay float64 `json:"price_per_day"`
	ImageURL    string  `json:"image_url"`
	Available   bool    `json:"available"`
	Featured    bool    `json:"featured"`
	SortOrder   int     `json:"sort_order"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (t *Transformer) EventRental(m *models.EventRental) EventRentalResource {
	return EventRentalResource{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		RentalType:  m.RentalType,
		PricePerDay: m.PricePerDay,
		ImageURL:    t.AbsoluteURL(m.ImageURL),
		Available:   m.Available,
		Featured:    m.Featured,
		SortOrder:   m.SortOrder,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func (t *Transformer) EventRentals(items []models.EventRental) []EventRentalResource {
	out := make([]EventRentalResource, len(items))
	for i := range items {
		out[i] = t.EventRental(&items[i])
	}
	return out
}

type PageSectionResource struct {
	ID         uint                   `json:"id"`
	Page       string                 `json:"page"`
	SectionKey string                 `json:"section_key"`
	Title      string                 `json:"title"`
	Content    map[string]interface{} `json:"content"`
	IsActive   bool                   `json:"is_active"`
	SortOrder  int                    `json:"sort_order"`
	CreatedAt  string                 `json:"created_at"`
	UpdatedAt  string                 `json:"updated_at"`
}

func (t *Transformer) PageSection(m *models.PageSection) PageSectionResource {
	return PageSectionResource{
		ID:         m.ID,
		Page:       m.Page,
		SectionKey: m.SectionKey,
		Title:      m.Title,
		Content:    decodeObject(m.Content),
		IsActive:   m.IsActive,
		SortOrder:  m.SortOrder,
		CreatedAt:  formatTime(m.CreatedAt),
		UpdatedAt:  formatTime(m.UpdatedAt),
	}
}

func (t *Transformer) PageSections(items []models.PageSection) []PageSectionResource {
	out := make([]PageSectionResource, len(items))
	for i := range items {
		out[i] = t.PageSection(&items[i])
	}
	return out
}

type UserResource struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (t *Transformer) User(m *models.User) UserResource {
	return UserResource{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      string(m.Role),
		IsActive:  m.IsActive,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func (t *Transformer) Users(items []models.User) []UserResource {
	out := make([]UserResource, len(items))
	for i := range items {
		out[i] = t.User(&items[i])
	}
	return out
}

type LoginResource struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResource `json:"user"`
}

func (t *Transformer) Login(res *services.LoginResult) LoginResource {
	return LoginResource{
		Token:     res.Token,
		ExpiresAt: formatTime(res.ExpiresAt),
		User:      t.User(res.User),
	}
}
