package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
)

// OrderReadRepository handles order read operations
type OrderReadRepository struct {
	db *sqlx.DB
}

func NewOrderReadRepository(db *sqlx.DB) *OrderReadRepository {
	return &OrderReadRepository{db: db}
}

// GetByID returns the order with the given id, or nil when no row exists.
func (r *OrderReadRepository) GetByID(ctx context.Context, id int64) (*models.OrderDB, error) {
	const query = `
		SELECT id, order_date, user_id
		FROM orders
		WHERE id = $1
	`

	var order models.OrderDB
	err := r.db.GetContext(ctx, &order, query, id)

	logger.Log.Infow("order query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ListByUserID returns all orders belonging to a user, oldest first.
// A user without orders yields an empty slice.
func (r *OrderReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.OrderDB, error) {
	const query = `
		SELECT id, order_date, user_id
		FROM orders
		WHERE user_id = $1
		ORDER BY id
	`

	orders := make([]models.OrderDB, 0)
	err := r.db.SelectContext(ctx, &orders, query, userID)

	logger.Log.Infow("order query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(orders),
		"error", err,
	)

	return orders, err
}

// ListProducts returns the products linked to an order via order_product.
func (r *OrderReadRepository) ListProducts(ctx context.Context, orderID int64) ([]models.ProductDB, error) {
	const query = `
		SELECT p.id, p.product_name, p.price
		FROM products p
		JOIN order_product op ON op.product_id = p.id
		WHERE op.order_id = $1
		ORDER BY p.id
	`

	products := make([]models.ProductDB, 0)
	err := r.db.SelectContext(ctx, &products, query, orderID)

	logger.Log.Infow("order query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{orderID},
		"result_count", len(products),
		"error", err,
	)

	return products, err
}

// OrderWriteRepository handles order write operations
type OrderWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewOrderWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *OrderWriteRepository {
	return &OrderWriteRepository{db: db, txGetter: txGetter}
}

func (r *OrderWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new order for a user. order_date is assigned by the
// database at insert time and never mutated afterwards.
func (r *OrderWriteRepository) Save(ctx context.Context, userID int64) (*models.OrderDB, error) {
	query := `
		INSERT INTO orders (user_id)
		VALUES ($1)
		RETURNING id, order_date, user_id
	`

	var order models.OrderDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &order, query, userID)

	logger.Log.Infow("order insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &order, nil
}

// AddProduct links a product to an order. The composite primary key
// rejects a second link for the same pair with a unique violation.
func (r *OrderWriteRepository) AddProduct(ctx context.Context, orderID, productID int64) error {
	query := `
		INSERT INTO order_product (order_id, product_id)
		VALUES ($1, $2)
	`
	args := []any{orderID, productID}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("order_product insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// RemoveProduct unlinks a product from an order.
// Returns false when the pair was not linked.
func (r *OrderWriteRepository) RemoveProduct(ctx context.Context, orderID, productID int64) (bool, error) {
	query := `
		DELETE FROM order_product
		WHERE order_id = $1 AND product_id = $2
	`
	args := []any{orderID, productID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("order_product delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
