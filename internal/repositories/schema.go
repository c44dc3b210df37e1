package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vkarpenko07/ecommerce-api/internal/logger"
)

// schema holds the table definitions. Creation is idempotent and never
// destructive; there is no migration story beyond this bootstrap.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(50) NOT NULL,
	address VARCHAR(200) NOT NULL,
	email VARCHAR(150) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS products (
	id BIGSERIAL PRIMARY KEY,
	product_name VARCHAR(100) NOT NULL,
	price DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	id BIGSERIAL PRIMARY KEY,
	order_date TIMESTAMPTZ NOT NULL DEFAULT now(),
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS order_product (
	order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	PRIMARY KEY (order_id, product_id)
);
`

// CreateSchema creates the tables if they do not exist yet.
// The composite primary key on order_product is the only guard against
// linking the same product to an order twice.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)

	logger.Log.Infow("schema bootstrap", "error", err)

	return err
}
