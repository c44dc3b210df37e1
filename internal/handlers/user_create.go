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

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, name, address, email string) (*models.UserDB, error)
}

// NewCreateUserHandler returns an HTTP handler for creating a user.
// @Summary Create a user
// @Description Creates a new user. Email must be unique across all users.
// @Tags users
// @Accept json
// @Produce json
// @Param user body validation.UserPayload true "User fields"
// @Success 201 {object} models.UserDB "Created user"
// @Failure 400 {object} validation.Errors "Field validation errors"
// @Failure 409 {object} handlers.MessageResponse "Duplicate email"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validation.UserPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid JSON body"})
			return
		}

		if errs := validation.ValidateUser(req); len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, errs)
			return
		}

		user, err := svc.Create(r.Context(), req.Name, req.Address, req.Email)
		if err != nil {
			switch err {
			case services.ErrEmailAlreadyExists:
				writeJSON(w, http.StatusConflict, MessageResponse{Message: "email already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}
