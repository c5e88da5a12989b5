package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ketubot-catalog/internal/auth"
	"ketubot-catalog/internal/cache"
	"ketubot-catalog/internal/mailer"
	"ketubot-catalog/internal/models"
	"ketubot-catalog/internal/repository"
)

const testSecret = "test-secret"

type noopMailer struct{}

func (noopMailer) Send(ctx context.Context, msg mailer.ContactMessage) error { return nil }

// The restricted verifier runs in the full stack here; the token issued
// by login must satisfy it just like the standard one.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cache.Get().Clear()
	router := gin.New()
	RegisterRoutes(router, Deps{
		Ketubas:      repository.NewMemoryKetubaRepository(),
		Users:        repository.NewMemoryUserRepository(),
		Issuer:       auth.NewIssuer(testSecret),
		Verifier:     auth.NewRestrictedVerifier(testSecret),
		Mailer:       noopMailer{},
		Secure:       false,
		PublicOrigin: "http://localhost:8080",
	})
	return router
}

func do(router *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAdminFlowEndToEnd(t *testing.T) {
	router := newTestRouter()

	// Guarded routes reject anonymous requests.
	w := do(router, http.MethodGet, "/api/admin/ketubas", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Bootstrap the first admin and log in.
	w = do(router, http.MethodPost, "/api/admin/auth/init", `{"username":"admin","password":"secret123"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodPost, "/api/admin/auth/login", `{"username":"admin","password":"secret123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session)

	// Create through the guarded CRUD.
	w = do(router, http.MethodPost, "/api/admin/ketubas",
		`{"name_cs":"Klasická","name_en":"Classic","price":5500}`, session)
	require.Equal(t, http.StatusCreated, w.Code)

	// The public catalog sees the record, localized.
	w = do(router, http.MethodGet, "/api/ketubas?locale=en", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ketubas []models.LocalizedKetuba `json:"ketubas"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Ketubas, 1)
	assert.Equal(t, "Classic", resp.Ketubas[0].Name)

	// And delete it again.
	w = do(router, http.MethodDelete, "/api/admin/ketubas/1", "", session)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitIsOneShot(t *testing.T) {
	router := newTestRouter()

	w := do(router, http.MethodPost, "/api/admin/auth/init", `{"username":"admin","password":"secret123"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodPost, "/api/admin/auth/init", `{"username":"second","password":"secret123"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicPathLocaleRedirect(t *testing.T) {
	router := newTestRouter()

	w := do(router, http.MethodGet, "/produkt/1", "", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/cs/produkt/1", w.Header().Get("Location"))
}
