package dto

import (
	"time"

	"github.com/spec-kit/guestbook-service/internal/domain"
)

// CreateUserRequest payload.
type CreateUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// UserResponse is the wire shape of a user record.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   *string   `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// HealthResponse reports service status.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a client-safe error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserFromDomain converts a domain User to its wire shape.
func UserFromDomain(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Message:   user.Message,
		CreatedAt: user.CreatedAt,
	}
}

// UsersFromDomain converts a slice of domain Users.
func UsersFromDomain(users []domain.User) []UserResponse {
	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, UserFromDomain(&users[i]))
	}
	return items
}
