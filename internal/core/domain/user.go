package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrSessionNotFound = errors.New("session not found")

// User is an admin account able to log into the panel. Accounts are seeded,
// never created through the API.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
