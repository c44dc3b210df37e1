package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vkarpenko07/ecommerce-api/internal/logger"
	"github.com/vkarpenko07/ecommerce-api/internal/models"
)

// Error variables
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, address, email string) (*models.UserDB, error)
	Update(ctx context.Context, id int64, name, address, email string) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserService handles user CRUD.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Create inserts a new user. The email uniqueness constraint is
// enforced by the database; a violation maps to ErrEmailAlreadyExists.
func (svc *UserService) Create(ctx context.Context, name, address, email string) (*models.UserDB, error) {
	user, err := svc.writer.Save(ctx, name, address, email)
	if err != nil {
		if isUniqueViolation(err) {
			logger.Log.Errorw("email already exists", "email", email)
			return nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	return user, nil
}

// List returns all users.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Get returns a user by id.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update overwrites all fields of an existing user.
func (svc *UserService) Update(ctx context.Context, id int64, name, address, email string) (*models.UserDB, error) {
	user, err := svc.writer.Update(ctx, id, name, address, email)
	if err != nil {
		if isUniqueViolation(err) {
			logger.Log.Errorw("email already exists", "email", email)
			return nil, ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Delete removes a user; orders and their product links go with it.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// uniqueViolationCode is the PostgreSQL error code for unique_violation.
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
