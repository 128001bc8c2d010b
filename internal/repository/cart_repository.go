package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yashrajoria/shop-service/internal/models"
)

// CartRepository defines data-access operations for cart rows.
type CartRepository interface {
	Add(ctx context.Context, item *models.CartItem) error
	ListProducts(ctx context.Context, userID uint) ([]models.Product, error)
	RemoveProduct(ctx context.Context, userID, productID uint) (int64, error)
	Clear(ctx context.Context, userID uint) (int64, error)
}

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) CartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Add(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// ListProducts returns the products in the user's cart in insertion order.
// A product added twice appears twice.
func (r *GormCartRepository) ListProducts(ctx context.Context, userID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("products.*").
		Joins("JOIN cart_items ON cart_items.product_id = products.id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormCartRepository) RemoveProduct(ctx context.Context, userID, productID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

func (r *GormCartRepository) Clear(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
