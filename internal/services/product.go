package services

import (
	"context"
	"errors"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
)

// ErrProductNotFound is returned when a referenced product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductReader defines read-only operations for products.
type ProductReader interface {
	GetByID(ctx context.Context, id int64) (*models.ProductDB, error)
	List(ctx context.Context) ([]models.ProductDB, error)
}

// ProductWriter defines write operations for products.
type ProductWriter interface {
	Save(ctx context.Context, productName string, price float64) (*models.ProductDB, error)
	Update(ctx context.Context, id int64, productName string, price float64) (*models.ProductDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ProductService handles product CRUD.
type ProductService struct {
	reader ProductReader
	writer ProductWriter
}

// NewProductService creates a new ProductService instance.
func NewProductService(reader ProductReader, writer ProductWriter) *ProductService {
	return &ProductService{
		reader: reader,
		writer: writer,
	}
}

// Create inserts a new product.
func (svc *ProductService) Create(ctx context.Context, productName string, price float64) (*models.ProductDB, error) {
	product, err := svc.writer.Save(ctx, productName, price)
	if err != nil {
		logger.Log.Errorw("failed to save product", "err", err)
		return nil, err
	}
	return product, nil
}

// List returns all products.
func (svc *ProductService) List(ctx context.Context) ([]models.ProductDB, error) {
	products, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list products", "err", err)
		return nil, err
	}
	return products, nil
}

// Get returns a product by id.
func (svc *ProductService) Get(ctx context.Context, id int64) (*models.ProductDB, error) {
	product, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get product", "err", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Update overwrites all fields of an existing product.
func (svc *ProductService) Update(ctx context.Context, id int64, productName string, price float64) (*models.ProductDB, error) {
	product, err := svc.writer.Update(ctx, id, productName, price)
	if err != nil {
		logger.Log.Errorw("failed to update product", "err", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Delete removes a product; links in order_product go with it.
func (svc *ProductService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete product", "err", err)
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}
