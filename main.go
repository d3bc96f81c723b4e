package main

import (
	"context"
	"os"

	"propulse-backend/config"
	"propulse-backend/handlers"
	"propulse-backend/identity"
	"propulse-backend/repositories"
	"propulse-backend/services"
	"propulse-backend/storage"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("could not load configuration")
	}

	// Initialize database
	db, err := config.InitDB(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("could not connect to database")
	}

	// Initialize blob storage
	blobs, err := storage.NewMinioStore(
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.UseSSL,
	)
	if err != nil {
		log.WithError(err).Fatal("could not create blob store client")
	}
	if err := blobs.EnsureBucket(context.Background()); err != nil {
		log.WithError(err).Fatal("could not ensure attachment bucket")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	attachmentRepo := repositories.NewAttachmentRepository(db)

	// Initialize identity manager
	tokens := identity.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpireDuration())
	manager := identity.NewManager(userRepo, tokens)

	// Initialize services
	authService := services.NewAuthService(manager)
	articleService := services.NewArticleService(articleRepo)
	attachmentService := services.NewAttachmentService(attachmentRepo, blobs, log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService)

	router := handlers.SetupRouter(log, tokens, authHandler, articleHandler, attachmentHandler)

	log.WithField("port", cfg.Server.Port).Info("server starting")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
