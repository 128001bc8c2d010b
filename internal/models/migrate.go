package models

import "gorm.io/gorm"

// Migrate creates or updates the products, users, cart_items and bookmarks tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Product{}, &User{}, &CartItem{}, &Bookmark{})
}
