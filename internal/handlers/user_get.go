package handlers

import (
	"context"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
	"github.com/vkarpenko07/ecommerce-api/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id int64) (*models.UserDB, error)
}

// NewGetUserHandler returns an HTTP handler for fetching a user by id.
// @Summary Get a user
// @Description Returns a single user by id. Related orders are not embedded.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserDB "User"
// @Failure 404 {object} handlers.MessageResponse "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "User not found"})
			return
		}

		user, err := svc.Get(r.Context(), id)
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

		writeJSON(w, http.StatusOK, user)
	}
}
