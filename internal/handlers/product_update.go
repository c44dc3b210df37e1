package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
	"github.com/vkarpenko07/ecommerce-api/internal/services"
	"github.com/vkarpenko07/ecommerce-api/internal/validation"
)

// ProductUpdater defines the interface that the service must implement.
type ProductUpdater interface {
	Update(ctx context.Context, id int64, productName string, price float64) (*models.ProductDB, error)
}

// NewUpdateProductHandler returns an HTTP handler for overwriting a product.
// @Summary Update a product
// @Description Overwrites all fields of an existing product.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body validation.ProductPayload true "Product fields"
// @Success 200 {object} models.ProductDB "Updated product"
// @Failure 400 {object} handlers.MessageResponse "Unknown id or validation errors"
// @Router /products/{id} [put]
func NewUpdateProductHandler(svc ProductUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "product is not in database"})
			return
		}

		var req validation.ProductPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid JSON body"})
			return
		}

		if errs := validation.ValidateProduct(req); len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, errs)
			return
		}

		product, err := svc.Update(r.Context(), id, req.ProductName, *req.Price)
		if err != nil {
			switch err {
			case services.ErrProductNotFound:
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "product is not in database"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}
