package routes

import (
	"github.com/gin-gonic/gin"

	"ketubot-catalog/internal/auth"
	"ketubot-catalog/internal/handlers"
	"ketubot-catalog/internal/mailer"
	"ketubot-catalog/internal/middleware"
	"ketubot-catalog/internal/repository"
)

// Deps carries everything the route handlers need.
type Deps struct {
	Ketubas      repository.KetubaRepository
	Users        repository.UserRepository
	Issuer       *auth.Issuer
	Verifier     auth.Verifier
	Mailer       mailer.Mailer
	Secure       bool
	PublicOrigin string
}

func RegisterRoutes(router *gin.Engine, deps Deps) {
	router.Use(middleware.LocaleRedirect())

	public := handlers.NewKetubaHandler(deps.Ketubas, deps.PublicOrigin)
	contact := handlers.NewContactHandler(deps.Mailer)
	session := handlers.NewAuthHandler(deps.Users, deps.Issuer, deps.Secure)
	admin := handlers.NewAdminKetubaHandler(deps.Ketubas)

	api := router.Group("/api")
	{
		api.GET("/ketubas", public.List)
		api.GET("/ketubas/:id", public.Get)
		api.POST("/contact", contact.Submit)

		adminAuth := api.Group("/admin/auth")
		{
			adminAuth.POST("/init", session.Init)
			adminAuth.POST("/login", session.Login)
			adminAuth.POST("/logout", session.Logout)
		}

		guarded := api.Group("/admin/ketubas", middleware.RequireAdmin(deps.Verifier, deps.Secure))
		{
			guarded.GET("", admin.List)
			guarded.POST("", admin.Create)
			guarded.GET("/:id", admin.Get)
			guarded.PUT("/:id", admin.Update)
			guarded.DELETE("/:id", admin.Delete)
		}
	}
}
