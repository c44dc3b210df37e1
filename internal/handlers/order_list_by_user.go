package handlers

import (
	"context"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
	"github.com/vkarpenko07/ecommerce-api/internal/services"
)

// UserOrdersLister defines the interface that the service must implement.
type UserOrdersLister interface {
	ListByUser(ctx context.Context, userID int64) ([]models.OrderDB, error)
}

// NewListOrdersForUserHandler returns an HTTP handler for listing the
// orders of a user.
// @Summary List orders for a user
// @Description Returns all orders of an existing user, oldest first. A user without orders yields an empty array.
// @Tags orders
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} models.Order "Orders of the user"
// @Failure 404 {object} handlers.MessageResponse "User not found"
// @Router /orders/user/{user_id} [get]
func NewListOrdersForUserHandler(svc UserOrdersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseID(r, "user_id")
		if err != nil {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "User not found"})
			return
		}

		orders, err := svc.ListByUser(r.Context(), userID)
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

		writeJSON(w, http.StatusOK, models.ToOrders(orders))
	}
}
