package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
	"github.com/Manish26364/sevas-admin/internal/core/ports"
)

// SessionStore abstracts the server-side session registry (Redis). A session
// exists between login and logout (or TTL expiry); deleting the entry
// revokes the token even though its signature stays valid.
type SessionStore interface {
	Create(ctx context.Context, sid, username string, ttl time.Duration) error
	Get(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error
}

// AuthService implements cookie-session login for the admin panel. The token
// handed to the browser is an HS256 JWT carrying the session id; the
// registry entry in Redis is what makes the session revocable.
type AuthService struct {
	users    ports.AuthRepository
	sessions SessionStore
	secret   string
	ttl      time.Duration
	logger   zerolog.Logger
}

func NewAuthService(users ports.AuthRepository, sessions SessionStore, secret string, ttl time.Duration, logger zerolog.Logger) *AuthService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{users: users, sessions: sessions, secret: secret, ttl: ttl, logger: logger}
}

// Login verifies the credentials and mints a session token. Unknown username
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	sid := uuid.NewString()
	if err := s.sessions.Create(ctx, sid, user.Username, s.ttl); err != nil {
		return "", err
	}

	token, err := s.signToken(sid, user.Username)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", user.Username).Msg("admin logged in")
	return token, nil
}

// Logout revokes the session behind the token. An unparseable token maps to
// ErrSessionNotFound rather than an internal error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	sid, _, err := s.parseToken(token)
	if err != nil {
		return domain.ErrSessionNotFound
	}
	if err := s.sessions.Delete(ctx, sid); err != nil {
		return err
	}

	s.logger.Info().Msg("admin logged out")
	return nil
}

// Authenticate resolves a presented token to the logged-in username. The
// signature check alone is not enough: the session id must still be present
// in the registry, so logged-out tokens fail here.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	sid, _, err := s.parseToken(token)
	if err != nil {
		return "", domain.ErrSessionNotFound
	}
	username, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return "", err
	}
	return username, nil
}

func (s *AuthService) signToken(sid, username string) (string, error) {
	claims := jwt.MapClaims{
		"sid":      sid,
		"username": username,
		"exp":      time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

func (s *AuthService) parseToken(token string) (sid, username string, err error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", "", domain.ErrSessionNotFound
	}

	sid, _ = claims["sid"].(string)
	username, _ = claims["username"].(string)
	if sid == "" {
		return "", "", domain.ErrSessionNotFound
	}
	return sid, username, nil
}
