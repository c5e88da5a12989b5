package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ketubot-catalog/internal/cache"
	"ketubot-catalog/internal/models"
	"ketubot-catalog/internal/repository"
)

func publicRouter(repo repository.KetubaRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cache.Get().Clear()
	router := gin.New()
	h := NewKetubaHandler(repo, "http://localhost:8080")
	router.GET("/api/ketubas", h.List)
	router.GET("/api/ketubas/:id", h.Get)
	return router
}

func seedKetuba(t *testing.T, repo repository.KetubaRepository, k models.Ketuba) models.Ketuba {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &k))
	return k
}

type listResponse struct {
	Ketubas []models.LocalizedKetuba `json:"ketubas"`
}

func TestPublicListLocalizesWithFallback(t *testing.T) {
	repo := repository.NewMemoryKetubaRepository()
	seedKetuba(t, repo, models.Ketuba{
		Name:        models.LocalizedText{CS: "Klasická", EN: "Classic"},
		Description: models.LocalizedText{CS: "Popis"},
		Price:       5500,
	})
	router := publicRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://shop.example/api/ketubas?locale=en", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Ketubas, 1)
	assert.Equal(t, "Classic", resp.Ketubas[0].Name)
	// Missing English description falls back to Czech.
	assert.Equal(t, "Popis", resp.Ketubas[0].Description)
}

func TestPublicListUnknownLocaleFallsBackToCzech(t *testing.T) {
	repo := repository.NewMemoryKetubaRepository()
	seedKetuba(t, repo, models.Ketuba{
		Name:  models.LocalizedText{CS: "Klasická", EN: "Classic"},
		Price: 5500,
	})
	router := publicRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://shop.example/api/ketubas?locale=de", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Ketubas, 1)
	assert.Equal(t, "Klasická", resp.Ketubas[0].Name)
}

func TestPublicListImageAbsolutization(t *testing.T) {
	repo := repository.NewMemoryKetubaRepository()
	seedKetuba(t, repo, models.Ketuba{Name: models.LocalizedText{CS: "a"}, Price: 1,
		Images: models.ImageList{"https://cdn.example.com/a.jpg"}})
	seedKetuba(t, repo, models.Ketuba{Name: models.LocalizedText{CS: "b"}, Price: 1,
		Images: models.ImageList{"/images/b.jpg"}})
	seedKetuba(t, repo, models.Ketuba{Name: models.LocalizedText{CS: "c"}, Price: 1})
	seedKetuba(t, repo, models.Ketuba{Name: models.LocalizedText{CS: "d"}, Price: 1,
		Images: models.ImageList{"uploads/d.jpg"}})
	router := publicRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://shop.example/api/ketubas", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Ketubas, 4)
	assert.Equal(t, "https://cdn.example.com/a.jpg", resp.Ketubas[0].Image)
	assert.Equal(t, "http://shop.example/images/b.jpg", resp.Ketubas[1].Image)
	assert.Equal(t, "http://shop.example/images/ketubah-1.svg", resp.Ketubas[2].Image)
	assert.Equal(t, "http://shop.example/uploads/d.jpg", resp.Ketubas[3].Image)
}

func TestPublicDetail(t *testing.T) {
	repo := repository.NewMemoryKetubaRepository()
	k := seedKetuba(t, repo, models.Ketuba{
		Name:  models.LocalizedText{CS: "Klasická"},
		Price: 5500,
	})
	router := publicRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://shop.example/api/ketubas/1", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ketuba models.LocalizedKetuba `json:"ketuba"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, k.ID, resp.Ketuba.ID)
	assert.Equal(t, "Klasická", resp.Ketuba.Name)
}

func TestPublicDetailErrors(t *testing.T) {
	router := publicRouter(repository.NewMemoryKetubaRepository())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ketubas/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ketubas/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicListIsCached(t *testing.T) {
	repo := repository.NewMemoryKetubaRepository()
	seedKetuba(t, repo, models.Ketuba{Name: models.LocalizedText{CS: "Klasická"}, Price: 5500})
	router := publicRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://shop.example/api/ketubas", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// A record added behind the cache's back is not visible until the
	// admin mutation path invalidates the listing.
	seedKetuba(t, repo, models.Ketuba{Name: models.LocalizedText{CS: "Moderní"}, Price: 6200})

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "http://shop.example/api/ketubas", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Ketubas, 1)
}
