package domain

import "time"

// User is the domain model for a submitted guestbook entry.
type User struct {
	ID        int64
	Name      string
	Email     string
	Message   *string
	CreatedAt time.Time
}
