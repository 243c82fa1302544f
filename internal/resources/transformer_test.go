package resources_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"eventcms_backend/internal/models"
	"eventcms_backend/internal/resources"
)

func TestAbsoluteURL(t *testing.T) {
	tr := resources.NewTransformer("https://cdn.example.com")

	assert.Equal(t, "", tr.AbsoluteURL(""))
	assert.Equal(t, "https://cdn.example.com/team/a.jpg", tr.AbsoluteURL("team/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/team/a.jpg", tr.AbsoluteURL("/team/a.jpg"))
	assert.Equal(t, "https://other.example.com/a.jpg", tr.AbsoluteURL("https://other.example.com/a.jpg"))
	assert.Equal(t, "http://other.example.com/a.jpg", tr.AbsoluteURL("http://other.example.com/a.jpg"))
}

func TestTestimonialDateFormat(t *testing.T) {
	tr := resources.NewTransformer("https://cdn.example.com")

	m := &models.Testimonial{Name: "A", Content: "B"}
	m.ID = 7
	m.CreatedAt = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	m.UpdatedAt = m.CreatedAt

	res := tr.Testimonial(m)
	assert.Equal(t, uint(7), res.ID)
	assert.Equal(t, "2025-03-14 09:26:53", res.CreatedAt)
}

func TestTeamMemberSkillsDecoding(t *testing.T) {
	tr := resources.NewTransformer("")

	m := &models.TeamMember{Name: "A", Skills: datatypes.JSON(`["lighting","sound"]`)}
	res := tr.TeamMember(m)
	assert.Equal(t, []string{"lighting", "sound"}, res.Skills)

	// Broken or empty column data degrades to an empty list, not nil.
	m.Skills = datatypes.JSON(`{broken`)
	assert.Equal(t, []string{}, tr.TeamMember(m).Skills)
	m.Skills = nil
	assert.Equal(t, []string{}, tr.TeamMember(m).Skills)
}

func TestPortfolioImagesAreAbsolute(t *testing.T) {
	tr := resources.NewTransformer("https://cdn.example.com")

	m := &models.Portfolio{
		Title:         "Gala",
		Slug:          "gala",
		Images:        datatypes.JSON(`["portfolios/one.jpg","https://x.example.com/two.jpg"]`),
		FeaturedImage: "portfolios/one.jpg",
	}
	res := tr.Portfolio(m)
	assert.Equal(t, []string{
		"https://cdn.example.com/portfolios/one.jpg",
		"https://x.example.com/two.jpg",
	}, res.Images)
	assert.Equal(t, "https://cdn.example.com/portfolios/one.jpg", res.FeaturedImage)
	assert.Nil(t, res.Category)
	assert.Nil(t, res.EventDate)
}

func TestPortfolioEventDateFormat(t *testing.T) {
	tr := resources.NewTransformer("")

	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	m := &models.Portfolio{Title: "Expo", Slug: "expo", EventDate: &d}
	res := tr.Portfolio(m)
	if assert.NotNil(t, res.EventDate) {
		assert.Equal(t, "2025-06-01", *res.EventDate)
	}
}

func TestCompanySocialLinksDecoding(t *testing.T) {
	tr := resources.NewTransformer("")

	m := &models.CompanyInformation{
		CompanyName: "Events Co",
		SocialLinks: datatypes.JSON(`{"instagram":"https://instagram.com/eventsco"}`),
	}
	res := tr.CompanyInformation(m)
	assert.Equal(t, "https://instagram.com/eventsco", res.SocialLinks["instagram"])

	m.SocialLinks = nil
	assert.Equal(t, map[string]string{}, tr.CompanyInformation(m).SocialLinks)
}
