package models

// UserDB represents a user record in the database
type UserDB struct {
	ID      int64  `json:"id" db:"id"`           // Primary key
	Name    string `json:"name" db:"name"`       // Display name, up to 50 chars
	Address string `json:"address" db:"address"` // Postal address, up to 200 chars
	Email   string `json:"email" db:"email"`     // Unique email, up to 150 chars
}
