package handlers

import (
	"context"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
	"github.com/vkarpenko07/ecommerce-api/internal/services"
)

// OrderProductsLister defines the interface that the service must implement.
type OrderProductsLister interface {
	ListProducts(ctx context.Context, orderID int64) ([]models.ProductDB, error)
}

// NewListOrderProductsHandler returns an HTTP handler for listing the
// products linked to an order.
// @Summary List products of an order
// @Description Returns all products linked to an existing order.
// @Tags orders
// @Produce json
// @Param order_id path int true "Order ID"
// @Success 200 {array} models.ProductDB "Products in the order"
// @Failure 404 {object} handlers.MessageResponse "Order not found"
// @Router /orders/{order_id}/products [get]
func NewListOrderProductsHandler(svc OrderProductsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseID(r, "order_id")
		if err != nil {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Order not found"})
			return
		}

		products, err := svc.ListProducts(r.Context(), orderID)
		if err != nil {
			switch err {
			case services.ErrOrderNotFound:
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Order not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}
