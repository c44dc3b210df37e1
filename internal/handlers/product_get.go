package handlers

import (
	"context"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
	"github.com/vkarpenko07/ecommerce-api/internal/services"
)

// ProductGetter defines the interface that the service must implement.
type ProductGetter interface {
	Get(ctx context.Context, id int64) (*models.ProductDB, error)
}

// NewGetProductHandler returns an HTTP handler for fetching a product by id.
// @Summary Get a product
// @Description Returns a single product by id. Related orders are not embedded.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductDB "Product"
// @Failure 404 {object} handlers.MessageResponse "Product not found"
// @Router /products/{id} [get]
func NewGetProductHandler(svc ProductGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Product not found"})
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			switch err {
			case services.ErrProductNotFound:
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Product not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}
