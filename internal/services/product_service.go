package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yashrajoria/shop-service/internal/apperrors"
	"github.com/yashrajoria/shop-service/internal/events"
	"github.com/yashrajoria/shop-service/internal/models"
	"github.com/yashrajoria/shop-service/internal/repository"
)

const msgProductNotFound = "Product not found"

// ProductService is the catalog API used by the product controller.
type ProductService interface {
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, req models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type productService struct {
	repo      repository.ProductRepository
	publisher events.Publisher
	logger    *zap.Logger
}

func NewProductService(repo repository.ProductRepository, publisher events.Publisher, logger *zap.Logger) ProductService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &productService{repo: repo, publisher: publisher, logger: logger}
}

func (s *productService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	product := req.Product()
	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("failed to create product", zap.String("name", req.Name), zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("product created", zap.Uint("product_id", product.ID))
	s.publish(ctx, events.NewProductEvent(events.ProductCreated, product.ID, product))
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to list products", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return findProduct(ctx, s.repo, s.logger, id)
}

// UpdateProduct changes only the fields present in req and returns the
// stored row.
func (s *productService) UpdateProduct(ctx context.Context, id uint, req models.UpdateProductRequest) (*models.Product, error) {
	current, err := findProduct(ctx, s.repo, s.logger, id)
	if err != nil {
		return nil, err
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return current, nil
	}
	if _, err := s.repo.Update(ctx, id, updates); err != nil {
		s.logger.Error("failed to update product", zap.Uint("product_id", id), zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	updated, err := findProduct(ctx, s.repo, s.logger, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("product updated", zap.Uint("product_id", id), zap.Int("fields", len(updates)))
	s.publish(ctx, events.NewProductEvent(events.ProductUpdated, id, updated))
	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete product", zap.Uint("product_id", id), zap.Error(err))
		return apperrors.Internal(err)
	}
	if affected == 0 {
		return apperrors.NotFound(msgProductNotFound)
	}

	s.logger.Info("product deleted", zap.Uint("product_id", id))
	s.publish(ctx, events.NewProductEvent(events.ProductDeleted, id, nil))
	return nil
}

// publish is best-effort: a failed event is logged and the request proceeds.
func (s *productService) publish(ctx context.Context, event events.ProductEvent) {
	if err := s.publisher.PublishProductEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish product event",
			zap.String("event_type", event.Type),
			zap.Uint("product_id", event.ProductID),
			zap.Error(err))
	}
}

// findProduct loads a product, mapping a missing row to 404.
func findProduct(ctx context.Context, repo repository.ProductRepository, logger *zap.Logger, id uint) (*models.Product, error) {
	product, err := repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound(msgProductNotFound)
	}
	if err != nil {
		logger.Error("failed to load product", zap.Uint("product_id", id), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return product, nil
}
