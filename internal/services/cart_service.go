package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yashrajoria/shop-service/internal/apperrors"
	"github.com/yashrajoria/shop-service/internal/models"
	"github.com/yashrajoria/shop-service/internal/repository"
)

// CartService manages a user's cart. Every call is scoped to userID.
type CartService interface {
	AddToCart(ctx context.Context, userID, productID uint) (string, error)
	ViewCart(ctx context.Context, userID uint) ([]models.Product, error)
	RemoveFromCart(ctx context.Context, userID, productID uint) error
	ClearCart(ctx context.Context, userID uint) error
}

type cartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, logger *zap.Logger) CartService {
	return &cartService{carts: carts, products: products, logger: logger}
}

// AddToCart appends a row even if the product is already in the cart and
// returns the confirmation message.
func (s *cartService) AddToCart(ctx context.Context, userID, productID uint) (string, error) {
	product, err := findProduct(ctx, s.products, s.logger, productID)
	if err != nil {
		return "", err
	}

	if err := s.carts.Add(ctx, &models.CartItem{UserID: userID, ProductID: product.ID}); err != nil {
		s.logger.Error("failed to add to cart",
			zap.Uint("user_id", userID), zap.Uint("product_id", productID), zap.Error(err))
		return "", apperrors.Internal(err)
	}
	return fmt.Sprintf("Product %s added to cart", product.Name), nil
}

func (s *cartService) ViewCart(ctx context.Context, userID uint) ([]models.Product, error) {
	products, err := s.carts.ListProducts(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load cart", zap.Uint("user_id", userID), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, userID, productID uint) error {
	removed, err := s.carts.RemoveProduct(ctx, userID, productID)
	if err != nil {
		s.logger.Error("failed to remove from cart",
			zap.Uint("user_id", userID), zap.Uint("product_id", productID), zap.Error(err))
		return apperrors.Internal(err)
	}
	if removed == 0 {
		return apperrors.NotFound("Product not in cart")
	}
	return nil
}

func (s *cartService) ClearCart(ctx context.Context, userID uint) error {
	if _, err := s.carts.Clear(ctx, userID); err != nil {
		s.logger.Error("failed to clear cart", zap.Uint("user_id", userID), zap.Error(err))
		return apperrors.Internal(err)
	}
	return nil
}
