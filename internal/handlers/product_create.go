package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
	"github.com/vkarpenko07/ecommerce-api/internal/validation"
)

// ProductCreator defines the interface that the service must implement.
type ProductCreator interface {
	Create(ctx context.Context, productName string, price float64) (*models.ProductDB, error)
}

// NewCreateProductHandler returns an HTTP handler for creating a product.
// @Summary Create a product
// @Description Creates a new product with a name and a price.
// @Tags products
// @Accept json
// @Produce json
// @Param product body validation.ProductPayload true "Product fields"
// @Success 201 {object} models.ProductDB "Created product"
// @Failure 400 {object} validation.Errors "Field validation errors"
// @Router /products [post]
func NewCreateProductHandler(svc ProductCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validation.ProductPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid JSON body"})
			return
		}

		if errs := validation.ValidateProduct(req); len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, errs)
			return
		}

		product, err := svc.Create(r.Context(), req.ProductName, *req.Price)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			return
		}

		writeJSON(w, http.StatusCreated, product)
	}
}
