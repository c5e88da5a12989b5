package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ketubot-catalog/internal/cache"
	"ketubot-catalog/internal/repository"
	"ketubot-catalog/internal/validation"
)

// AdminKetubaHandler implements the guarded catalog CRUD. It serves raw
// records (all locale variants) for the dashboard editor.
type AdminKetubaHandler struct {
	repo  repository.KetubaRepository
	cache *cache.Cache
}

func NewAdminKetubaHandler(repo repository.KetubaRepository) *AdminKetubaHandler {
	return &AdminKetubaHandler{
		repo:  repo,
		cache: cache.Get(),
	}
}

func (h *AdminKetubaHandler) List(c *gin.Context) {
	ketubas, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Println("error loading ketubas:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nepodařilo se načíst ketuboty"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ketubas": ketubas})
}

func (h *AdminKetubaHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neplatné ID"})
		return
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
	c.JSON(http.StatusOK, gin.H{"ketuba": ketuba})
}

func (h *AdminKetubaHandler) Create(c *gin.Context) {
	var input validation.KetubaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := input.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nesprávná data", "errors": errs})
		return
	}

	ketuba := input.Ketuba()
	if err := h.repo.Create(c.Request.Context(), &ketuba); err != nil {
		log.Println("error creating ketuba:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nepodařilo se vytvořit ketubu"})
		return
	}

	h.cache.DeleteByPrefix("ketubas:")
	c.JSON(http.StatusCreated, gin.H{"message": "Ketuba vytvořena", "id": ketuba.ID})
}

func (h *AdminKetubaHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neplatné ID"})
		return
	}

	var input validation.KetubaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := input.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nesprávná data", "errors": errs})
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, input.Update()); err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ketuba nenalezena"})
			return
		}
		log.Println("error updating ketuba:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nepodařilo se aktualizovat ketubu"})
		return
	}

	h.cache.DeleteByPrefix("ketubas:")
	c.JSON(http.StatusOK, gin.H{"message": "Ketuba aktualizována"})
}

func (h *AdminKetubaHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neplatné ID"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ketuba nenalezena"})
			return
		}
		log.Println("error deleting ketuba:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nepodařilo se smazat ketubu"})
		return
	}

	h.cache.DeleteByPrefix("ketubas:")
	c.JSON(http.StatusOK, gin.H{"message": "Ketuba smazána"})
}
