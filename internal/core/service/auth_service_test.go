package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

func authFixture(t *testing.T) (*AuthService, *stubSessionStore) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	users := &stubUserRepo{byUsername: map[string]*domain.User{
		"admin": {ID: "u1", Username: "admin", PasswordHash: string(hash)},
	}}
	sessions := newStubSessionStore()
	return NewAuthService(users, sessions, "test-secret", time.Hour, discardLogger), sessions
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	svc, sessions := authFixture(t)

	token, err := svc.Login(context.Background(), "admin", "admin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions.sessions))
	}

	username, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if username != "admin" {
		t.Fatalf("username = %q, want admin", username)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _ := authFixture(t)

	_, err := svc.Login(context.Background(), "admin", "letmein")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	svc, _ := authFixture(t)

	_, err := svc.Login(context.Background(), "ghost", "admin")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_LoginEmptyCredentials(t *testing.T) {
	svc, _ := authFixture(t)

	if _, err := svc.Login(context.Background(), "", "admin"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty username: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), "admin", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty password: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	svc, sessions := authFixture(t)

	token, err := svc.Login(context.Background(), "admin", "admin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatal("session entry survived logout")
	}

	// The signature is still valid, but the registry entry is gone.
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestAuthService_AuthenticateGarbageToken(t *testing.T) {
	svc, _ := authFixture(t)

	if _, err := svc.Authenticate(context.Background(), "not-a-jwt"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestAuthService_AuthenticateForeignSignature(t *testing.T) {
	svc, _ := authFixture(t)

	other, _ := authFixture(t)
	other.secret = "other-secret"
	token, err := other.Login(context.Background(), "admin", "admin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}
