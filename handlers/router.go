package handlers

import (
	"net/http"

	"propulse-backend/identity"
	"propulse-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRouter wires the request pipeline: logging, recovery, public auth
// routes, and the session-protected article/attachment routes.
func SetupRouter(
	log *logrus.Logger,
	tokens *identity.TokenManager,
	authHandler *AuthHandler,
	articleHandler *ArticleHandler,
	attachmentHandler *AttachmentHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(tokens))
		{
			protected.GET("/profile", authHandler.GetProfile)

			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
			}

			attachments := protected.Group("/attachments")
			{
				attachments.POST("", attachmentHandler.Upload)
				attachments.GET("", attachmentHandler.GetAttachments)
				attachments.GET("/:id", attachmentHandler.GetAttachment)
			}
		}
	}

	return router
}
