package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yashrajoria/shop-service/internal/models"
)

// BookmarkRepository defines data-access operations for bookmarks.
type BookmarkRepository interface {
	Add(ctx context.Context, bookmark *models.Bookmark) error
	ListProducts(ctx context.Context, userID uint) ([]models.Product, error)
	RemoveProduct(ctx context.Context, userID, productID uint) (int64, error)
}

type GormBookmarkRepository struct {
	db *gorm.DB
}

func NewGormBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &GormBookmarkRepository{db: db}
}

func (r *GormBookmarkRepository) Add(ctx context.Context, bookmark *models.Bookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

func (r *GormBookmarkRepository) ListProducts(ctx context.Context, userID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("products.*").
		Joins("JOIN bookmarks ON bookmarks.product_id = products.id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormBookmarkRepository) RemoveProduct(ctx context.Context, userID, productID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Bookmark{})
	return result.RowsAffected, result.Error
}
