package routes

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yashrajoria/shop-service/internal/config"
	"github.com/yashrajoria/shop-service/internal/controllers"
	"github.com/yashrajoria/shop-service/internal/events"
	"github.com/yashrajoria/shop-service/internal/middleware"
	"github.com/yashrajoria/shop-service/internal/repository"
	"github.com/yashrajoria/shop-service/internal/services"
	"github.com/yashrajoria/shop-service/internal/session"
)

const serviceName = "shop-service"

// Dependencies are the long-lived objects the router is built from.
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	DB        *gorm.DB
	Sessions  session.Store
	Publisher events.Publisher
	Limiter   *middleware.RateLimiter
	Metrics   *middleware.Metrics

	// BcryptCost overrides bcrypt.DefaultCost when non-zero.
	BcryptCost int
}

// NewRouter wires repositories, services and controllers onto a gin engine.
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	controllers.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	// --- Dependency injection ---
	productRepo := repository.NewGormProductRepository(deps.DB)
	userRepo := repository.NewGormUserRepository(deps.DB)
	cartRepo := repository.NewGormCartRepository(deps.DB)
	bookmarkRepo := repository.NewGormBookmarkRepository(deps.DB)

	productService := services.NewProductService(productRepo, deps.Publisher, deps.Logger)
	authService := services.NewAuthService(userRepo, deps.Sessions, deps.BcryptCost, deps.Logger)
	cartService := services.NewCartService(cartRepo, productRepo, deps.Logger)
	bookmarkService := services.NewBookmarkService(bookmarkRepo, productRepo, deps.Logger)

	RegisterProductRoutes(r, controllers.NewProductController(productService))
	RegisterAuthRoutes(r, controllers.NewAuthController(authService, cfg.SessionTTL, cfg.IsProduction()), authService, deps.Limiter)
	RegisterCartRoutes(r, controllers.NewCartController(cartService), authService)
	RegisterBookmarkRoutes(r, controllers.NewBookmarkController(bookmarkService), authService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": serviceName})
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.SessionTokenHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		// Credentials cannot be combined with a wildcard origin.
		c.AllowAllOrigins = true
		c.AllowCredentials = false
		return c
	}
	c.AllowOrigins = origins
	return c
}
