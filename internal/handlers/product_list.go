package handlers

import (
	"context"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
)

// ProductLister defines the interface that the service must implement.
type ProductLister interface {
	List(ctx context.Context) ([]models.ProductDB, error)
}

// NewListProductsHandler returns an HTTP handler for listing all products.
// @Summary List products
// @Description Returns all products in insertion order.
// @Tags products
// @Produce json
// @Success 200 {array} models.ProductDB "All products"
// @Router /products [get]
func NewListProductsHandler(svc ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}
