package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yashrajoria/shop-service/internal/apperrors"
	"github.com/yashrajoria/shop-service/internal/models"
	"github.com/yashrajoria/shop-service/internal/repository"
)

type BookmarkService interface {
	AddBookmark(ctx context.Context, userID, productID uint) (string, error)
	ListBookmarks(ctx context.Context, userID uint) ([]models.Product, error)
	RemoveBookmark(ctx context.Context, userID, productID uint) error
}

type bookmarkService struct {
	bookmarks repository.BookmarkRepository
	products  repository.ProductRepository
	logger    *zap.Logger
}

func NewBookmarkService(bookmarks repository.BookmarkRepository, products repository.ProductRepository, logger *zap.Logger) BookmarkService {
	return &bookmarkService{bookmarks: bookmarks, products: products, logger: logger}
}

func (s *bookmarkService) AddBookmark(ctx context.Context, userID, productID uint) (string, error) {
	product, err := findProduct(ctx, s.products, s.logger, productID)
	if err != nil {
		return "", err
	}

	if err := s.bookmarks.Add(ctx, &models.Bookmark{UserID: userID, ProductID: product.ID}); err != nil {
		s.logger.Error("failed to add bookmark",
			zap.Uint("user_id", userID), zap.Uint("product_id", productID), zap.Error(err))
		return "", apperrors.Internal(err)
	}
	return fmt.Sprintf("Product %s bookmarked", product.Name), nil
}

func (s *bookmarkService) ListBookmarks(ctx context.Context, userID uint) ([]models.Product, error) {
	products, err := s.bookmarks.ListProducts(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load bookmarks", zap.Uint("user_id", userID), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *bookmarkService) RemoveBookmark(ctx context.Context, userID, productID uint) error {
	removed, err := s.bookmarks.RemoveProduct(ctx, userID, productID)
	if err != nil {
		s.logger.Error("failed to remove bookmark",
			zap.Uint("user_id", userID), zap.Uint("product_id", productID), zap.Error(err))
		return apperrors.Internal(err)
	}
	if removed == 0 {
		return apperrors.NotFound("Product not bookmarked")
	}
	return nil
}
