package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inkwell-dev/inkwell/internal/auth"
	"github.com/inkwell-dev/inkwell/internal/config"
	"github.com/inkwell-dev/inkwell/internal/handlers"
	"github.com/inkwell-dev/inkwell/internal/middleware"
	"github.com/inkwell-dev/inkwell/internal/services"
	"github.com/inkwell-dev/inkwell/internal/storage"
	"github.com/inkwell-dev/inkwell/internal/store"
)

// New wires stores, services and handlers onto a Gin engine.
func New(cfg config.Config, database *gorm.DB) (*gin.Engine, error) {
	images, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, auth.DefaultTTL)

	authHandler := handlers.NewAuthHandler(
		services.NewAuthService(store.NewUserStore(database), tokens),
	)
	blogHandler := handlers.NewBlogHandler(
		services.NewBlogService(store.NewBlogStore(database), images),
	)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", images.Dir())

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		blogs := api.Group("/blogs")
		{
			blogs.GET("", blogHandler.List)
			blogs.GET("/:id", blogHandler.Get)
			blogs.POST("", middleware.RequireAuth(tokens), blogHandler.Create)
			blogs.PATCH("/:id", middleware.RequireAuth(tokens), blogHandler.Update)
			blogs.DELETE("/:id", middleware.RequireAuth(tokens), blogHandler.Delete)
		}
	}

	return r, nil
}
