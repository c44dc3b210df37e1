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

// ProductReadRepository handles product read operations
type ProductReadRepository struct {
	db *sqlx.DB
}

func NewProductReadRepository(db *sqlx.DB) *ProductReadRepository {
	return &ProductReadRepository{db: db}
}

// GetByID returns the product with the given id, or nil when no row exists.
func (r *ProductReadRepository) GetByID(ctx context.Context, id int64) (*models.ProductDB, error) {
	const query = `
		SELECT id, product_name, price
		FROM products
		WHERE id = $1
	`

	var product models.ProductDB
	err := r.db.GetContext(ctx, &product, query, id)

	logger.Log.Infow("product query",
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

	return &product, nil
}

// List returns all products in insertion order.
func (r *ProductReadRepository) List(ctx context.Context) ([]models.ProductDB, error) {
	const query = `
		SELECT id, product_name, price
		FROM products
		ORDER BY id
	`

	products := make([]models.ProductDB, 0)
	err := r.db.SelectContext(ctx, &products, query)

	logger.Log.Infow("product query",
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(products),
		"error", err,
	)

	return products, err
}

// ProductWriteRepository handles product write operations
type ProductWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProductWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProductWriteRepository {
	return &ProductWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProductWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new product and returns the stored row.
func (r *ProductWriteRepository) Save(ctx context.Context, productName string, price float64) (*models.ProductDB, error) {
	query := `
		INSERT INTO products (product_name, price)
		VALUES ($1, $2)
		RETURNING id, product_name, price
	`
	args := []any{productName, price}

	var product models.ProductDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &product, query, args...)

	logger.Log.Infow("product insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update overwrites all mutable fields of a product.
// Returns nil when no row with the given id exists.
func (r *ProductWriteRepository) Update(ctx context.Context, id int64, productName string, price float64) (*models.ProductDB, error) {
	query := `
		UPDATE products
		SET product_name = $2, price = $3
		WHERE id = $1
		RETURNING id, product_name, price
	`
	args := []any{id, productName, price}

	var product models.ProductDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &product, query, args...)

	logger.Log.Infow("product update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a product. Links in order_product are removed by the
// schema's ON DELETE CASCADE.
// Returns false when no row with the given id exists.
func (r *ProductWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM products
		WHERE id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("product delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
