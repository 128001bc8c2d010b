package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/shop-service/internal/controllers"
	"github.com/yashrajoria/shop-service/internal/middleware"
	"github.com/yashrajoria/shop-service/internal/services"
)

// RegisterProductRoutes sets up the public catalog routes.
func RegisterProductRoutes(r *gin.Engine, pc *controllers.ProductController) {
	products := r.Group("/products")
	products.POST("/", pc.CreateProduct)
	products.GET("/", pc.ListProducts)
	products.GET("/:id", pc.GetProduct)
	products.PUT("/:id", pc.UpdateProduct)
	products.DELETE("/:id", pc.DeleteProduct)
}

// RegisterAuthRoutes sets up account routes. Register and login share the
// limiter's per-IP budget.
func RegisterAuthRoutes(r *gin.Engine, ac *controllers.AuthController, auth services.AuthService, limiter *middleware.RateLimiter) {
	public := r.Group("/")
	if limiter != nil {
		public.Use(middleware.RateLimit(limiter))
	}
	public.POST("/register", ac.Register)
	public.POST("/login", ac.Login)

	authed := r.Group("/", middleware.RequireSession(auth))
	authed.POST("/logout", ac.Logout)
	authed.GET("/me", ac.Me)
}

// RegisterCartRoutes sets up the cart routes, all requiring a session.
func RegisterCartRoutes(r *gin.Engine, cc *controllers.CartController, auth services.AuthService) {
	cart := r.Group("/cart", middleware.RequireSession(auth))
	cart.POST("/:product_id", cc.AddToCart)
	cart.GET("/", cc.ViewCart)
	cart.DELETE("/:product_id", cc.RemoveFromCart)
	cart.DELETE("/", cc.ClearCart)
}

// RegisterBookmarkRoutes sets up the bookmark routes, all requiring a session.
func RegisterBookmarkRoutes(r *gin.Engine, bc *controllers.BookmarkController, auth services.AuthService) {
	bookmarks := r.Group("/bookmarks", middleware.RequireSession(auth))
	bookmarks.POST("/:product_id", bc.AddBookmark)
	bookmarks.GET("/", bc.ListBookmarks)
	bookmarks.DELETE("/:product_id", bc.RemoveBookmark)
}
