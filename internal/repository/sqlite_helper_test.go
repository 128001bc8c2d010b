package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yashrajoria/shop-service/internal/models"
)

// newSQLiteDB returns a migrated database backed by a file in t.TempDir().
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "shop.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedProducts(t *testing.T, db *gorm.DB, names ...string) []models.Product {
	t.Helper()
	products := make([]models.Product, 0, len(names))
	for i, name := range names {
		p := models.Product{Name: name, Price: float64(i + 1), Stock: 1}
		require.NoError(t, db.Create(&p).Error)
		products = append(products, p)
	}
	return products
}
