package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
	"github.com/vkarpenko07/ecommerce-api/internal/services"
)

// OrderCreator defines the interface that the service must implement.
type OrderCreator interface {
	Create(ctx context.Context, userID int64) (*models.OrderDB, error)
}

// CreateOrderRequest represents the JSON body for creating an order.
// order_date is accepted for compatibility but ignored; the server
// assigns the timestamp.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	// Owning user id
	// required: true
	// default: 1
	UserID *int64 `json:"user_id"`

	// Ignored; the order date is always server-assigned
	OrderDate string `json:"order_date,omitempty"`
}

// NewCreateOrderHandler returns an HTTP handler for creating an order.
// @Summary Create an order
// @Description Creates an order for an existing user with a server-assigned UTC order date.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body handlers.CreateOrderRequest true "Order fields"
// @Success 201 {object} models.Order "Created order"
// @Failure 400 {object} handlers.MessageResponse "Missing user_id"
// @Failure 404 {object} handlers.MessageResponse "User not found"
// @Router /orders [post]
func NewCreateOrderHandler(svc OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid JSON body"})
			return
		}

		if req.UserID == nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "user_id is required"})
			return
		}

		order, err := svc.Create(r.Context(), *req.UserID)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				writeJSON(w, http.StatusNotFound, MessageResponse{Message: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusCreated, order.ToOrder())
	}
}
