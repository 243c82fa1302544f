package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eventcms_backend/internal/cache"
	"eventcms_backend/internal/handlers"
	"eventcms_backend/internal/middleware"
	"eventcms_backend/internal/models"
	"eventcms_backend/internal/repositories"
	"eventcms_backend/internal/resources"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/validator"
	"eventcms_backend/test/helpers"
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination json.RawMessage `json:"pagination"`
	Errors     json.RawMessage `json:"errors"`
}

func newTestimonialRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := helpers.NewTestDB(t)
	memCache := cache.NewMemoryCache()
	t.Cleanup(memCache.Close)
	svc := services.NewTestimonialService(repositories.NewTestimonialRepository(), memCache)
	h := handlers.NewTestimonialHandler(
		handlers.NewBaseHandler(validator.New()),
		svc,
		resources.NewTransformer("http://localhost/uploads"),
	)

	router := gin.New()
	router.Use(middleware.DB(db))
	router.GET("/public/testimonials", h.Active)
	router.GET("/admin/testimonials", h.List)
	router.GET("/admin/testimonials/:id", h.Get)
	router.POST("/admin/testimonials", h.Create)
	router.POST("/admin/testimonials/:id/approve", h.Approve)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestTestimonialHandler_ActiveReturnsOnlyApproved(t *testing.T) {
	router, db := newTestimonialRouter(t)

	require.NoError(t, db.Create(&models.Testimonial{Name: "Aida", Content: "Great event", Rating: 5, Status: true}).Error)
	require.NoError(t, db.Create(&models.Testimonial{Name: "Marat", Content: "Pending review", Rating: 4, Status: false}).Error)

	rec, env := doJSON(t, router, http.MethodGet, "/public/testimonials", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Aida", items[0]["name"])
}

func TestTestimonialHandler_CreateValidation(t *testing.T) {
	router, _ := newTestimonialRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/admin/testimonials", map[string]interface{}{
		"name":   "",
		"rating": 9,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, env.Success)

	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Errors, &fieldErrors))
	assert.Contains(t, fieldErrors, "name")
	assert.Contains(t, fieldErrors, "content")
	assert.Contains(t, fieldErrors, "rating")
}

func TestTestimonialHandler_CreateAndApprove(t *testing.T) {
	router, _ := newTestimonialRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/admin/testimonials", map[string]interface{}{
		"name":    "Dana",
		"content": "Flawless organization",
		"rating":  5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, false, created["status"])

	rec, env = doJSON(t, router, http.MethodPost, "/admin/testimonials/1/approve", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var approved map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &approved))
	assert.Equal(t, true, approved["status"])
}

func TestTestimonialHandler_GetNotFound(t *testing.T) {
	router, _ := newTestimonialRouter(t)

	rec, env := doJSON(t, router, http.MethodGet, "/admin/testimonials/42", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestTestimonialHandler_InvalidIDParam(t *testing.T) {
	router, _ := newTestimonialRouter(t)

	rec, env := doJSON(t, router, http.MethodGet, "/admin/testimonials/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestTestimonialHandler_ListFilters(t *testing.T) {
	router, db := newTestimonialRouter(t)

	require.NoError(t, db.Create(&models.Testimonial{Name: "Approved", Content: "x", Rating: 5, Status: true}).Error)
	require.NoError(t, db.Create(&models.Testimonial{Name: "Pending", Content: "x", Rating: 3, Status: false}).Error)

	_, env := doJSON(t, router, http.MethodGet, "/admin/testimonials?status=true", nil)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Approved", items[0]["name"])

	_, env = doJSON(t, router, http.MethodGet, "/admin/testimonials?rating=3", nil)
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Pending", items[0]["name"])
}

func TestTestimonialHandler_ListPagination(t *testing.T) {
	router, db := newTestimonialRouter(t)

	for i := 0; i < 20; i++ {
		require.NoError(t, db.Create(&models.Testimonial{Name: "Client", Content: "Good", Rating: 4}).Error)
	}

	rec, env := doJSON(t, router, http.MethodGet, "/admin/testimonials?page=2&per_page=15", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var p map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Pagination, &p))
	assert.EqualValues(t, 20, p["total"])
	assert.EqualValues(t, 2, p["current_page"])
	assert.EqualValues(t, 2, p["total_pages"])

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 5)
}

func TestTestimonialHandler_ListDefaultPerPage(t *testing.T) {
	router, db := newTestimonialRouter(t)

	for i := 0; i < 12; i++ {
		require.NoError(t, db.Create(&models.Testimonial{Name: "Client", Content: "Good", Rating: 4}).Error)
	}

	_, env := doJSON(t, router, http.MethodGet, "/admin/testimonials", nil)

	var p map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Pagination, &p))
	assert.EqualValues(t, 10, p["per_page"])
	assert.EqualValues(t, 2, p["total_pages"])
}
