// Package auth holds the back-office gate: bcrypt credential checks, signed
// session tokens and the admin-role lookup. A boolean gate, not a permission
// system.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsisencao/portal-juridico/internal/db"
)

const RoleAdmin = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// Store is the user/role surface the gate needs. *db.Repository satisfies it.
type Store interface {
	UserByEmail(ctx context.Context, email string) (*db.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*db.User, error)
	CreateUser(ctx context.Context, user *db.User) error
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
	AssignRole(ctx context.Context, userID uuid.UUID, role string) error
}

type Service struct {
	store  Store
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(store Store, secret string, ttl time.Duration) *Service {
	return &Service{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// SignIn checks the credentials and returns a signed session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("get user by email: %w", err)
	} else if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// VerifyToken validates a session token and returns the user id it carries.
func (s *Service) VerifyToken(token string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}

// IsAdmin reports whether the user holds the admin role. Checked per request
// so a revoked role takes effect before the token expires.
func (s *Service) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.store.HasRole(ctx, userID, RoleAdmin)
}

// EnsureAdmin creates an admin account, or grants the admin role when the
// email is already registered. Returns whether a user was created.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) (*db.User, bool, error) {
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("get user by email: %w", err)
	}

	created := false
	if user == nil {
		hash, err := HashPassword(password)
		if err != nil {
			return nil, false, err
		}

		user = &db.User{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    s.now(),
		}
		if err := s.store.CreateUser(ctx, user); err != nil {
			return nil, false, fmt.Errorf("create user: %w", err)
		}
		created = true
	}

	if err := s.store.AssignRole(ctx, user.ID, RoleAdmin); err != nil {
		return nil, false, fmt.Errorf("assign admin role: %w", err)
	}

	return user, created, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}
