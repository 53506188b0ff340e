package main

import (
	"github.com/gin-gonic/gin"

	userHandler "blog-backend/internal/domains/user/handler"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/pathparam"
	"blog-backend/pkg/container"
)

// SetupRouter wires the HTTP surface. Per-route chains run in a fixed order:
// path validation -> authentication -> ownership -> handler, each stage
// short-circuiting the rest on failure.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Profile pictures can reach ~45MB.
	router.MaxMultipartMemory = userHandler.MaxPictureSize

	auth := middleware.Auth(c.JWTManager)
	postOwner := middleware.PostOwner(c.BlogRepo)
	commentOwner := middleware.CommentOwner(c.BlogRepo, c.CommentRepo)
	profileOwner := middleware.ProfileOwner()

	router.GET("/health", healthCheckHandler(c))

	// ========================================
	// AUTH ROUTES
	// ========================================
	router.POST("/register", c.UserHandler.Register)
	router.POST("/login", c.UserHandler.Login)

	// ========================================
	// BLOG ROUTES
	// ========================================
	blogs := router.Group("/blogs")
	{
		blogs.GET("", c.BlogHandler.List)
		blogs.POST("", auth, c.BlogHandler.Create)
		blogs.GET("/:id", pathparam.Validate("id"), c.BlogHandler.GetByID)
		blogs.PUT("/:id", pathparam.Validate("id"), auth, postOwner, c.BlogHandler.Update)
		blogs.DELETE("/:id", pathparam.Validate("id"), auth, postOwner, c.BlogHandler.Delete)

		blogs.POST("/:id/reaction", pathparam.Validate("id"), auth, c.BlogHandler.ToggleReaction)

		blogs.GET("/:id/comments", pathparam.Validate("id"), c.CommentHandler.ListByPost)
		blogs.POST("/:id/comments", pathparam.Validate("id"), auth, c.CommentHandler.Create)
		blogs.PUT("/:id/comments/:commentId",
			pathparam.Validate("id", "commentId"), auth, commentOwner, c.CommentHandler.Update)
		blogs.DELETE("/:id/comments/:commentId",
			pathparam.Validate("id", "commentId"), auth, commentOwner, c.CommentHandler.Delete)
	}

	// ========================================
	// USER ROUTES
	// ========================================
	users := router.Group("/users")
	{
		users.GET("", c.UserHandler.List)
		users.GET("/:id", pathparam.Validate("id"), c.UserHandler.GetByID)
		users.PUT("/:id", pathparam.Validate("id"), auth, profileOwner, c.UserHandler.UpdateProfile)
		users.POST("/:id/picture", pathparam.Validate("id"), auth, profileOwner, c.UserHandler.UploadPicture)
	}

	return router
}
