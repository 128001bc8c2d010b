package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/shop-service/internal/middleware"
	"github.com/yashrajoria/shop-service/internal/services"
)

// CartController serves /cart. All handlers sit behind RequireSession.
type CartController struct {
	cartService services.CartService
}

func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func (cc *CartController) AddToCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.AbortUnauthenticated(c)
		return
	}
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	msg, err := cc.cartService.AddToCart(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg})
}

func (cc *CartController) ViewCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.AbortUnauthenticated(c)
		return
	}

	products, err := cc.cartService.ViewCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (cc *CartController) RemoveFromCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.AbortUnauthenticated(c)
		return
	}
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	if err := cc.cartService.RemoveFromCart(c.Request.Context(), userID, productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (cc *CartController) ClearCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.AbortUnauthenticated(c)
		return
	}

	if err := cc.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
