package handlers

import (
	"context"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/services"
)

// OrderProductAdder defines the interface that the service must implement.
type OrderProductAdder interface {
	AddProduct(ctx context.Context, orderID, productID int64) error
}

// NewAddProductToOrderHandler returns an HTTP handler for linking a
// product to an order.
// @Summary Add a product to an order
// @Description Links an existing product to an existing order. A product can be linked to an order at most once.
// @Tags orders
// @Produce json
// @Param order_id path int true "Order ID"
// @Param product_id path int true "Product ID"
// @Success 201 {object} handlers.MessageResponse "Link confirmation"
// @Failure 400 {object} handlers.MessageResponse "Product already in order"
// @Failure 404 {object} handlers.MessageResponse "Order or product not found"
// @Router /orders/{order_id}/add_product/{product_id} [post]
func NewAddProductToOrderHandler(svc OrderProductAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseID(r, "order_id")
		if err != nil {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Order not found"})
			return
		}
		productID, err := parseID(r, "product_id")
		if err != nil {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Product not found"})
			return
		}

		if err := svc.AddProduct(r.Context(), orderID, productID); err != nil {
			switch err {
			case services.ErrOrderNotFound:
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Order not found"})
			case services.ErrProductNotFound:
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Product not found"})
			case services.ErrProductAlreadyInOrder:
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Product already exists in order"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusCreated, MessageResponse{Message: "Product added to order"})
	}
}
