package validation

import (
	"fmt"
	"net/mail"
)

// Field length limits, matching the database schema.
const (
	MaxNameLen        = 50
	MaxAddressLen     = 200
	MaxEmailLen       = 150
	MaxProductNameLen = 100
)

// Errors maps a field name to the list of messages for that field.
// An empty map means the payload is valid.
type Errors map[string][]string

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// UserPayload is the inbound shape checked before any user write.
type UserPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// ProductPayload is the inbound shape checked before any product write.
// Price is a pointer so a missing field can be told apart from 0.
type ProductPayload struct {
	ProductName string   `json:"product_name"`
	Price       *float64 `json:"price"`
}

// ValidateUser checks presence, length, and email format for a user payload.
func ValidateUser(p UserPayload) Errors {
	errs := Errors{}

	if p.Name == "" {
		errs.add("name", "Missing data for required field.")
	} else if len(p.Name) > MaxNameLen {
		errs.add("name", fmt.Sprintf("Longer than maximum length %d.", MaxNameLen))
	}

	if p.Address == "" {
		errs.add("address", "Missing data for required field.")
	} else if len(p.Address) > MaxAddressLen {
		errs.add("address", fmt.Sprintf("Longer than maximum length %d.", MaxAddressLen))
	}

	if p.Email == "" {
		errs.add("email", "Missing data for required field.")
	} else {
		if len(p.Email) > MaxEmailLen {
			errs.add("email", fmt.Sprintf("Longer than maximum length %d.", MaxEmailLen))
		}
		if _, err := mail.ParseAddress(p.Email); err != nil {
			errs.add("email", "Not a valid email address.")
		}
	}

	return errs
}

// ValidateProduct checks presence and length for a product payload.
func ValidateProduct(p ProductPayload) Errors {
	errs := Errors{}

	if p.ProductName == "" {
		errs.add("product_name", "Missing data for required field.")
	} else if len(p.ProductName) > MaxProductNameLen {
		errs.add("product_name", fmt.Sprintf("Longer than maximum length %d.", MaxProductNameLen))
	}

	if p.Price == nil {
		errs.add("price", "Missing data for required field.")
	}

	return errs
}
