package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/services"
)

// OrderProductRemover defines the interface that the service must implement.
type OrderProductRemover interface {
	RemoveProduct(ctx context.Context, orderID, productID int64) error
}

// RemoveProductRequest represents the JSON body for unlinking a product
// from an order.
// swagger:model RemoveProductRequest
type RemoveProductRequest struct {
	// Product id to unlink
	// required: true
	// default: 1
	ProductID *int64 `json:"product_id"`
}

// NewRemoveProductFromOrderHandler returns an HTTP handler for
// unlinking a product from an order.
// @Summary Remove a product from an order
// @Description Unlinks a product from an order. The product must currently be linked.
// @Tags orders
// @Accept json
// @Produce json
// @Param order_id path int true "Order ID"
// @Param body body handlers.RemoveProductRequest true "Product to unlink"
// @Success 200 {object} handlers.MessageResponse "Unlink confirmation"
// @Failure 400 {object} handlers.MessageResponse "Missing product_id / product not in order"
// @Failure 404 {object} handlers.MessageResponse "Order or product not found"
// @Router /orders/{order_id}/remove_product [delete]
func NewRemoveProductFromOrderHandler(svc OrderProductRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseID(r, "order_id")
		if err != nil {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Order not found"})
			return
		}

		var req RemoveProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid JSON body"})
			return
		}

		if req.ProductID == nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "product_id is required"})
			return
		}

		if err := svc.RemoveProduct(r.Context(), orderID, *req.ProductID); err != nil {
			switch err {
			case services.ErrOrderNotFound:
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Order not found"})
			case services.ErrProductNotFound:
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Product not found"})
			case services.ErrProductNotInOrder:
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Product is not in order"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Product removed from order"})
	}
}
