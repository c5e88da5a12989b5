package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ketubot-catalog/internal/mailer"
	"ketubot-catalog/internal/validation"
)

// ContactHandler validates contact-form submissions and forwards them
// to the email provider. Validation failures never reach the provider.
type ContactHandler struct {
	mailer mailer.Mailer
}

func NewContactHandler(m mailer.Mailer) *ContactHandler {
	return &ContactHandler{mailer: m}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var input validation.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := input.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nesprávná data", "errors": errs})
		return
	}

	msg := mailer.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}
	if err := h.mailer.Send(c.Request.Context(), msg); err != nil {
		log.Println("error sending contact email:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nepodařilo se odeslat email. Zkuste to prosím později."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email byl úspěšně odeslán"})
}
