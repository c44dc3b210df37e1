package handlers

import (
	"context"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// NewListUsersHandler returns an HTTP handler for listing all users.
// @Summary List users
// @Description Returns all users in insertion order.
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB "All users"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}
