package domain

import "time"

// Account is the domain model for registered end-users.
type Account struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
