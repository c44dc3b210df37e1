package models

import "time"

// OrderDateLayout is the wire format for order timestamps.
const OrderDateLayout = "2006-01-02 15:04:05"

// OrderDB represents an order record in the database
type OrderDB struct {
	ID        int64     `json:"id" db:"id"`           // Primary key
	OrderDate time.Time `json:"-" db:"order_date"`    // Set once at creation, UTC
	UserID    int64     `json:"user_id" db:"user_id"` // Owning user
}

// Order is the JSON shape of an order with the timestamp rendered
// as a date-time string.
type Order struct {
	ID        int64  `json:"id"`
	OrderDate string `json:"order_date"`
	UserID    int64  `json:"user_id"`
}

// ToOrder renders an order row for the API, formatting order_date in UTC.
func (o OrderDB) ToOrder() Order {
	return Order{
		ID:        o.ID,
		OrderDate: o.OrderDate.UTC().Format(OrderDateLayout),
		UserID:    o.UserID,
	}
}

// ToOrders renders a slice of order rows, never returning nil so an
// empty result serializes as an empty JSON array.
func ToOrders(rows []OrderDB) []Order {
	orders := make([]Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.ToOrder())
	}
	return orders
}
