package services

import (
	"context"
	"errors"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
)

// Error variables
var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrProductAlreadyInOrder = errors.New("product already in order")
	ErrProductNotInOrder     = errors.New("product not in order")
)

// OrderUserReader defines the user lookup needed for order operations.
type OrderUserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// OrderProductReader defines the product lookup needed for order operations.
type OrderProductReader interface {
	GetByID(ctx context.Context, id int64) (*models.ProductDB, error)
}

// OrderReader defines read-only operations for orders.
type OrderReader interface {
	GetByID(ctx context.Context, id int64) (*models.OrderDB, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.OrderDB, error)
	ListProducts(ctx context.Context, orderID int64) ([]models.ProductDB, error)
}

// OrderWriter defines write operations for orders and product links.
type OrderWriter interface {
	Save(ctx context.Context, userID int64) (*models.OrderDB, error)
	AddProduct(ctx context.Context, orderID, productID int64) error
	RemoveProduct(ctx context.Context, orderID, productID int64) (bool, error)
}

// OrderService handles orders and the order-product association.
type OrderService struct {
	users    OrderUserReader
	products OrderProductReader
	reader   OrderReader
	writer   OrderWriter
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(users OrderUserReader, products OrderProductReader, reader OrderReader, writer OrderWriter) *OrderService {
	return &OrderService{
		users:    users,
		products: products,
		reader:   reader,
		writer:   writer,
	}
}

// Create inserts a new order for an existing user. The order date is
// assigned by the database at insert time.
func (svc *OrderService) Create(ctx context.Context, userID int64) (*models.OrderDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "user_id", userID)
		return nil, ErrUserNotFound
	}

	order, err := svc.writer.Save(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to save order", "err", err)
		return nil, err
	}
	return order, nil
}

// AddProduct links an existing product to an existing order. A second
// link for the same pair maps to ErrProductAlreadyInOrder.
func (svc *OrderService) AddProduct(ctx context.Context, orderID, productID int64) error {
	if err := svc.checkOrderExists(ctx, orderID); err != nil {
		return err
	}
	if err := svc.checkProductExists(ctx, productID); err != nil {
		return err
	}

	if err := svc.writer.AddProduct(ctx, orderID, productID); err != nil {
		if isUniqueViolation(err) {
			logger.Log.Errorw("product already in order", "order_id", orderID, "product_id", productID)
			return ErrProductAlreadyInOrder
		}
		logger.Log.Errorw("failed to add product to order", "err", err)
		return err
	}
	return nil
}

// RemoveProduct unlinks a product from an order. The pair must be
// currently linked.
func (svc *OrderService) RemoveProduct(ctx context.Context, orderID, productID int64) error {
	if err := svc.checkOrderExists(ctx, orderID); err != nil {
		return err
	}
	if err := svc.checkProductExists(ctx, productID); err != nil {
		return err
	}

	removed, err := svc.writer.RemoveProduct(ctx, orderID, productID)
	if err != nil {
		logger.Log.Errorw("failed to remove product from order", "err", err)
		return err
	}
	if !removed {
		logger.Log.Errorw("product not in order", "order_id", orderID, "product_id", productID)
		return ErrProductNotInOrder
	}
	return nil
}

// ListByUser returns the orders of an existing user, possibly empty.
func (svc *OrderService) ListByUser(ctx context.Context, userID int64) ([]models.OrderDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	orders, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list orders", "err", err)
		return nil, err
	}
	return orders, nil
}

// ListProducts returns the products linked to an existing order.
func (svc *OrderService) ListProducts(ctx context.Context, orderID int64) ([]models.ProductDB, error) {
	if err := svc.checkOrderExists(ctx, orderID); err != nil {
		return nil, err
	}

	products, err := svc.reader.ListProducts(ctx, orderID)
	if err != nil {
		logger.Log.Errorw("failed to list order products", "err", err)
		return nil, err
	}
	return products, nil
}

func (svc *OrderService) checkOrderExists(ctx context.Context, orderID int64) error {
	order, err := svc.reader.GetByID(ctx, orderID)
	if err != nil {
		logger.Log.Errorw("failed to check order exists", "err", err)
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return nil
}

func (svc *OrderService) checkProductExists(ctx context.Context, productID int64) error {
	product, err := svc.products.GetByID(ctx, productID)
	if err != nil {
		logger.Log.Errorw("failed to check product exists", "err", err)
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return nil
}
