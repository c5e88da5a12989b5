package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ketubot-catalog/internal/cache"
	"ketubot-catalog/internal/i18n"
	"ketubot-catalog/internal/models"
	"ketubot-catalog/internal/repository"
)

const placeholderImage = "/images/ketubah-1.svg"

// KetubaHandler serves the public catalog: localized listings and
// detail views, with a short-lived cache in front of the listing.
type KetubaHandler struct {
	repo           repository.KetubaRepository
	cache          *cache.Cache
	fallbackOrigin string
}

func NewKetubaHandler(repo repository.KetubaRepository, fallbackOrigin string) *KetubaHandler {
	return &KetubaHandler{
		repo:           repo,
		cache:          cache.Get(),
		fallbackOrigin: fallbackOrigin,
	}
}

// List returns all ketubot localized for the requested locale.
func (h *KetubaHandler) List(c *gin.Context) {
	locale := c.DefaultQuery("locale", i18n.DefaultLocale)
	if !i18n.IsValid(locale) {
		locale = i18n.DefaultLocale
	}
	origin := requestOrigin(c, h.fallbackOrigin)

	cacheKey := fmt.Sprintf("ketubas:list:%s:%s", locale, origin)
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	ketubas, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Println("error loading ketubas:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nepodařilo se načíst ketuboty"})
		return
	}

	localized := make([]models.LocalizedKetuba, 0, len(ketubas))
	for _, k := range ketubas {
		localized = append(localized, localizeKetuba(k, locale, origin))
	}

	response := gin.H{"ketubas": localized}
	h.cache.Set(cacheKey, response, 2*time.Minute)
	c.JSON(http.StatusOK, response)
}

// Get returns one localized ketuba, used by the product detail page.
func (h *KetubaHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neplatné ID"})
		return
	}
	locale := c.DefaultQuery("locale", i18n.DefaultLocale)
	if !i18n.IsValid(locale) {
		locale = i18n.DefaultLocale
	}

	ketuba, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ketuba nenalezena"})
			return
		}
		log.Println("error loading ketuba:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nepodařilo se načíst ketubu"})
		return
	}

	origin := requestOrigin(c, h.fallbackOrigin)
	c.JSON(http.StatusOK, gin.H{"ketuba": localizeKetuba(*ketuba, locale, origin)})
}

func localizeKetuba(k models.Ketuba, locale, origin string) models.LocalizedKetuba {
	image := ""
	if len(k.Images) > 0 {
		image = k.Images[0]
	}
	return models.LocalizedKetuba{
		ID:          k.ID,
		Name:        k.Name.Resolve(locale),
		Description: k.Description.Resolve(locale),
		Category:    k.Category.Resolve(locale),
		Price:       k.Price,
		Image:       resolveImageURL(origin, image),
		CreatedAt:   k.CreatedAt,
		UpdatedAt:   k.UpdatedAt,
	}
}

// resolveImageURL absolutizes the stored image reference: absolute URLs
// pass through, site-relative paths get the origin, empty falls back to
// the placeholder.
func resolveImageURL(origin, image string) string {
	if isAbsoluteURL(image) {
		return image
	}
	switch {
	case image == "":
		return origin + placeholderImage
	case strings.HasPrefix(image, "/"):
		return origin + image
	default:
		return origin + "/" + image
	}
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func requestOrigin(c *gin.Context, fallback string) string {
	host := c.Request.Host
	if host == "" {
		return fallback
	}
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + host
}
