package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yashrajoria/shop-service/internal/apperrors"
	"github.com/yashrajoria/shop-service/internal/models"
)

func newBookmarkService() (BookmarkService, *MockBookmarkRepository, *MockProductRepository) {
	bookmarks := new(MockBookmarkRepository)
	products := new(MockProductRepository)
	return NewBookmarkService(bookmarks, products, zap.NewNop()), bookmarks, products
}

func TestAddBookmark(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, bookmarks, products := newBookmarkService()
		products.On("FindByID", ctx, uint(2)).Return(&models.Product{ID: 2, Name: "Atlas"}, nil)
		bookmarks.On("Add", ctx, &models.Bookmark{UserID: 5, ProductID: 2}).Return(nil)

		msg, err := svc.AddBookmark(ctx, 5, 2)
		require.NoError(t, err)
		assert.Equal(t, "Product Atlas bookmarked", msg)
		bookmarks.AssertExpectations(t)
	})

	t.Run("Unknown product", func(t *testing.T) {
		svc, bookmarks, products := newBookmarkService()
		products.On("FindByID", ctx, uint(2)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.AddBookmark(ctx, 5, 2)
		appErr := apperrors.From(err)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		assert.Equal(t, "Product not found", appErr.Message)
		bookmarks.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("Product lookup failure", func(t *testing.T) {
		svc, _, products := newBookmarkService()
		products.On("FindByID", ctx, uint(2)).Return(nil, errors.New("db down"))

		_, err := svc.AddBookmark(ctx, 5, 2)
		assert.True(t, apperrors.Is(err, http.StatusInternalServerError))
	})

	t.Run("Insert failure", func(t *testing.T) {
		svc, bookmarks, products := newBookmarkService()
		products.On("FindByID", ctx, uint(2)).Return(&models.Product{ID: 2, Name: "Atlas"}, nil)
		bookmarks.On("Add", ctx, mock.Anything).Return(errors.New("db down"))

		_, err := svc.AddBookmark(ctx, 5, 2)
		appErr := apperrors.From(err)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, "Internal server error", appErr.Message)
	})
}

func TestListBookmarks(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil becomes empty", func(t *testing.T) {
		svc, bookmarks, _ := newBookmarkService()
		bookmarks.On("ListProducts", ctx, uint(5)).Return(nil, nil)

		got, err := svc.ListBookmarks(ctx, 5)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, []models.Product{}, got)
	})

	t.Run("Keeps order and duplicates", func(t *testing.T) {
		svc, bookmarks, _ := newBookmarkService()
		atlas := models.Product{ID: 2, Name: "Atlas"}
		compass := models.Product{ID: 3, Name: "Compass"}
		bookmarks.On("ListProducts", ctx, uint(5)).Return([]models.Product{compass, atlas, compass}, nil)

		got, err := svc.ListBookmarks(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, []models.Product{compass, atlas, compass}, got)
	})

	t.Run("Repository failure", func(t *testing.T) {
		svc, bookmarks, _ := newBookmarkService()
		bookmarks.On("ListProducts", ctx, uint(5)).Return(nil, errors.New("db down"))

		_, err := svc.ListBookmarks(ctx, 5)
		assert.True(t, apperrors.Is(err, http.StatusInternalServerError))
	})
}

func TestRemoveBookmark(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, bookmarks, _ := newBookmarkService()
		bookmarks.On("RemoveProduct", ctx, uint(5), uint(2)).Return(int64(2), nil)
		assert.NoError(t, svc.RemoveBookmark(ctx, 5, 2))
	})

	t.Run("Not bookmarked", func(t *testing.T) {
		svc, bookmarks, _ := newBookmarkService()
		bookmarks.On("RemoveProduct", ctx, uint(5), uint(2)).Return(int64(0), nil)

		err := svc.RemoveBookmark(ctx, 5, 2)
		appErr := apperrors.From(err)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		assert.Equal(t, "Product not bookmarked", appErr.Message)
	})

	t.Run("Repository failure", func(t *testing.T) {
		svc, bookmarks, _ := newBookmarkService()
		bookmarks.On("RemoveProduct", ctx, uint(5), uint(2)).Return(int64(0), errors.New("db down"))

		err := svc.RemoveBookmark(ctx, 5, 2)
		assert.True(t, apperrors.Is(err, http.StatusInternalServerError))
	})
}
