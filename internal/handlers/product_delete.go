package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/services"
)

// ProductDeleter defines the interface that the service must implement.
type ProductDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteProductHandler returns an HTTP handler for deleting a product.
// @Summary Delete a product
// @Description Deletes a product together with its order-product links.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} handlers.MessageResponse "Deletion confirmation"
// @Failure 400 {object} handlers.MessageResponse "Unknown id"
// @Router /products/{id} [delete]
func NewDeleteProductHandler(svc ProductDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "product not in database"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch err {
			case services.ErrProductNotFound:
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "product not in database"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("product %d has been deleted", id)})
	}
}
