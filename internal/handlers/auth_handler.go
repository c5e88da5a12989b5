package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ketubot-catalog/internal/auth"
	"ketubot-catalog/internal/repository"
	"ketubot-catalog/internal/validation"
)

// invalidCredentials is shared by the unknown-user and wrong-password
// paths so the response does not reveal which field was wrong.
const invalidCredentials = "Nesprávné přihlašovací údaje"

// AuthHandler implements the admin session endpoints: one-time init,
// login and logout.
type AuthHandler struct {
	users  repository.UserRepository
	issuer *auth.Issuer
	secure bool
}

func NewAuthHandler(users repository.UserRepository, issuer *auth.Issuer, secure bool) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer, secure: secure}
}

// Init creates the first admin account. Once any user exists the
// endpoint rejects all further attempts.
func (h *AuthHandler) Init(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Username == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username a heslo jsou povinné"})
		return
	}

	count, err := h.users.Count(c.Request.Context())
	if err != nil {
		log.Println("error counting users:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nepodařilo se vytvořit uživatele"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admin uživatel již existuje"})
		return
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		log.Println("error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nepodařilo se vytvořit uživatele"})
		return
	}
	if _, err := h.users.Create(c.Request.Context(), body.Username, hash); err != nil {
		log.Println("error creating user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nepodařilo se vytvořit uživatele"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin uživatel vytvořen"})
}

// Login checks credentials and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var input validation.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := input.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nesprávná data", "errors": errs})
		return
	}

	user, err := h.users.GetByUsername(c.Request.Context(), input.Username)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentials})
			return
		}
		log.Println("error loading user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nepodařilo se přihlásit"})
		return
	}

	if !auth.CheckPassword(user.Password, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentials})
		return
	}

	token, err := h.issuer.Issue(user.Username)
	if err != nil {
		log.Println("error issuing token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Nepodařilo se přihlásit"})
		return
	}

	auth.SetSessionCookie(c, token, h.secure)
	c.JSON(http.StatusOK, gin.H{"message": "Přihlášení úspěšné", "username": user.Username})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, h.secure)
	c.JSON(http.StatusOK, gin.H{"message": "Odhlášení úspěšné"})
}
