package model

import "time"

// User is a registered account. Email is the lookup key.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
