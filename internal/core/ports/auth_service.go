package ports

import "context"

// AuthService manages admin sessions. Login returns the signed session token
// that goes into the session cookie; Authenticate resolves a presented token
// back to a username, failing when the session has been revoked or expired.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (string, error)
}
