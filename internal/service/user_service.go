package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/guestbook-service/internal/domain"
	"github.com/spec-kit/guestbook-service/internal/repository"
	apperrors "github.com/spec-kit/guestbook-service/pkg/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserCreateInput carries raw form values before normalization.
type UserCreateInput struct {
	Name    string
	Email   string
	Message string
}

// UserService validates input and maps storage errors to domain errors.
type UserService struct {
	users repository.UserRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns all users, newest first.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageFailure("Failed to fetch users", err)
	}
	return users, nil
}

// Get returns a single user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User")
		}
		return nil, apperrors.NewStorageFailure("Failed to fetch user", err)
	}
	return user, nil
}

// Create validates, normalizes and persists a new user.
//
// Validation order is observable: missing fields win over a malformed
// email, and storage is never reached with invalid input.
func (s *UserService) Create(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	if name == "" || email == "" {
		return nil, apperrors.NewValidationError("Name and email are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewValidationError("Invalid email format")
	}

	user := &domain.User{
		Name:  name,
		Email: email,
	}
	if message != "" {
		user.Message = &message
	}

	if err := s.users.Create(ctx, user); err != nil {
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, apperrors.NewStorageFailure("Failed to create user", err)
	}
	return user, nil
}

// Delete removes a user by id and returns the deleted record.
func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User")
		}
		return nil, apperrors.NewStorageFailure("Failed to delete user", err)
	}
	return user, nil
}
