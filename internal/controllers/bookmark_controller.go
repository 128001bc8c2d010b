package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/shop-service/internal/middleware"
	"github.com/yashrajoria/shop-service/internal/services"
)

type BookmarkController struct {
	bookmarkService services.BookmarkService
}

func NewBookmarkController(bookmarkService services.BookmarkService) *BookmarkController {
	return &BookmarkController{bookmarkService: bookmarkService}
}

func (bc *BookmarkController) AddBookmark(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.AbortUnauthenticated(c)
		return
	}
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	msg, err := bc.bookmarkService.AddBookmark(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg})
}

func (bc *BookmarkController) ListBookmarks(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.AbortUnauthenticated(c)
		return
	}

	products, err := bc.bookmarkService.ListBookmarks(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (bc *BookmarkController) RemoveBookmark(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.AbortUnauthenticated(c)
		return
	}
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	if err := bc.bookmarkService.RemoveBookmark(c.Request.Context(), userID, productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
