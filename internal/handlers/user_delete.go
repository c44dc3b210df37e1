package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/services"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteUserHandler returns an HTTP handler for deleting a user.
// @Summary Delete a user
// @Description Deletes a user together with their orders and order-product links.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} handlers.MessageResponse "Deletion confirmation"
// @Failure 400 {object} handlers.MessageResponse "Unknown id"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "user is not in the database"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch err {
			case services.ErrUserNotFound:
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "user is not in the database"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("user %d has been deleted", id)})
	}
}
