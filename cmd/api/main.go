package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"ketubot-catalog/internal/auth"
	"ketubot-catalog/internal/cache"
	"ketubot-catalog/internal/config"
	"ketubot-catalog/internal/database"
	"ketubot-catalog/internal/mailer"
	"ketubot-catalog/internal/repository"
	"ketubot-catalog/internal/routes"
	"ketubot-catalog/internal/store"
)

func main() {
	cfg := config.LoadConfig()
	cache.Init(5 * time.Minute)

	fileStore := store.New(cfg.DataDir)

	var ketubas repository.KetubaRepository
	if cfg.StoreDriver == "mongo" {
		client := database.Connect(cfg.MongoURI)
		db := client.Database(cfg.MongoDB)
		ketubas = repository.NewMongoKetubaRepository(db.Collection("ketubas"))
	} else {
		ketubas = repository.NewFileKetubaRepository(fileStore)
	}
	// Admin credentials stay in the flat file in both modes.
	users := repository.NewFileUserRepository(fileStore)

	router := gin.Default()
	routes.RegisterRoutes(router, routes.Deps{
		Ketubas:      ketubas,
		Users:        users,
		Issuer:       auth.NewIssuer(cfg.JWTSecret),
		Verifier:     auth.NewVerifier(cfg.TokenVerifier, cfg.JWTSecret),
		Mailer:       mailer.NewResendMailer(cfg.ResendAPIKey, cfg.ContactFrom, cfg.ContactTo),
		Secure:       cfg.Production(),
		PublicOrigin: cfg.PublicOrigin,
	})

	log.Println("Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
