package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
	"github.com/vkarpenko07/ecommerce-api/internal/services"
	"github.com/vkarpenko07/ecommerce-api/internal/validation"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id int64, name, address, email string) (*models.UserDB, error)
}

// NewUpdateUserHandler returns an HTTP handler for overwriting a user.
// @Summary Update a user
// @Description Overwrites all fields of an existing user. All three fields are required.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body validation.UserPayload true "User fields"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} handlers.MessageResponse "Unknown id or validation errors"
// @Failure 409 {object} handlers.MessageResponse "Duplicate email"
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "User is not in the database"})
			return
		}

		var req validation.UserPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid JSON body"})
			return
		}

		if errs := validation.ValidateUser(req); len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, errs)
			return
		}

		user, err := svc.Update(r.Context(), id, req.Name, req.Address, req.Email)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "User is not in the database"})
			case services.ErrEmailAlreadyExists:
				writeJSON(w, http.StatusConflict, MessageResponse{Message: "email already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
