package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"

	"blog-backend/internal/domains/blog"
	blogHandler "blog-backend/internal/domains/blog/handler"
	blogRepo "blog-backend/internal/domains/blog/repository"
	blogService "blog-backend/internal/domains/blog/service"
	"blog-backend/internal/domains/comment"
	commentHandler "blog-backend/internal/domains/comment/handler"
	commentRepo "blog-backend/internal/domains/comment/repository"
	commentService "blog-backend/internal/domains/comment/service"
	"blog-backend/internal/domains/user"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

// Container holds every dependency of the application; it is the root of the
// dependency graph. All members are singletons, initialized once at startup.
type Container struct {
	// Infrastructure layer
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	Images     *storage.ImageProcessor
	JWTManager *jwt.Manager

	// Repository layer (data access)
	UserRepo    user.Repository
	BlogRepo    blog.Repository
	CommentRepo comment.Repository

	// Service layer (business logic)
	UserService    user.Service
	BlogService    blog.Service
	CommentService comment.Service

	// Handler layer (HTTP)
	UserHandler    *userHandler.UserHandler
	BlogHandler    *blogHandler.BlogHandler
	CommentHandler *commentHandler.CommentHandler
}

// NewContainer initializes the whole dependency graph, in order:
// config -> infrastructure -> repositories -> services -> handlers.
func NewContainer() (*Container, error) {
	log.Println("[CONTAINER] Initializing dependencies...")

	c := &Container{}

	// 1. Configuration (depends on nothing)
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[CONTAINER] Config loaded (environment: %s)", cfg.App.Environment)

	// 2. Infrastructure
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.Redis = infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = infraCache.NewCache(c.Redis)

	c.Storage, err = storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	c.Images = storage.NewImageProcessor()

	// The signing secret is process-wide and read-only after this point.
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// 3. Repositories
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.BlogRepo = blogRepo.NewPostgresRepository(c.DB.Pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(c.DB.Pool)

	// 4. Services
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.Storage, c.Images)
	c.BlogService = blogService.NewBlogService(c.BlogRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)

	// 5. Handlers
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)

	log.Println("[CONTAINER] All dependencies initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	log.Println("[CONTAINER] Cleaning up resources...")

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close redis: %v", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Println("[CONTAINER] Cleanup complete")
}
