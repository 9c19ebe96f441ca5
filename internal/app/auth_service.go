// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/Tarsisbs/Backend-APP-TCC/internal/domain"
)

var (
	// ErrMissingFields indicates that a required request field was absent or empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidCredentials indicates that the provided email or password was
	// incorrect. Unknown email and wrong password report the same error so the
	// API does not leak which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound indicates that the user no longer exists in the store.
	ErrUserNotFound = errors.New("user not found")
)

// AuthService orchestrates registration, login and profile reads.
type AuthService struct {
	users  domain.UserRepository
	tokens *TokenCodec
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, tokens *TokenCodec) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new account. It does not log the user in; the client
// calls Login afterwards.
func (s *AuthService) Register(ctx context.Context, name, email, secret string) error {
	if name == "" || email == "" || secret == "" {
		return ErrMissingFields
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailTaken
	}

	// The unique constraint on email backs this up: a concurrent duplicate
	// registering between the check above and this insert comes back as
	// domain.ErrEmailTaken from the repository.
	_, err = s.users.Create(ctx, name, email, HashPassword(secret))
	return err
}

// Login verifies credentials and issues a session token. It returns the token
// and the account's display name.
func (s *AuthService) Login(ctx context.Context, email, secret string) (string, string, error) {
	if email == "" || secret == "" {
		return "", "", ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", ErrInvalidCredentials
	}

	if !ConstantTimeCompare(HashPassword(secret), user.PasswordHash) {
		return "", "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Claim{ID: user.ID, Name: user.Name})
	if err != nil {
		return "", "", err
	}

	return token, user.Name, nil
}

// Profile returns the current account row for a verified claim's id.
// The password verifier is on the returned struct; callers project it away.
func (s *AuthService) Profile(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// LoginWithSSO issues a session token for an externally authenticated user,
// provisioning the account on first login. SSO accounts keep an empty
// verifier, which no password hashes to, so they cannot password-login.
func (s *AuthService) LoginWithSSO(ctx context.Context, email, name string) (string, string, error) {
	if email == "" {
		return "", "", ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		if name == "" {
			name = email
		}
		user, err = s.users.Create(ctx, name, email, "")
		if errors.Is(err, domain.ErrEmailTaken) {
			// Lost a provisioning race; the row exists now.
			user, err = s.users.GetByEmail(ctx, email)
		}
		if err != nil {
			return "", "", err
		}
		if user == nil {
			return "", "", ErrUserNotFound
		}
	}

	token, err := s.tokens.Issue(domain.Claim{ID: user.ID, Name: user.Name})
	if err != nil {
		return "", "", err
	}

	return token, user.Name, nil
}

// ConstantTimeCompare performs a constant-time comparison of two strings.
func ConstantTimeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
