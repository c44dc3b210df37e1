package models

// ProductDB represents a product record in the database
type ProductDB struct {
	ID          int64   `json:"id" db:"id"`                     // Primary key
	ProductName string  `json:"product_name" db:"product_name"` // Product name, up to 100 chars
	Price       float64 `json:"price" db:"price"`               // Unit price, no currency contract
}
