package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"cakue/internal/auth"
	"cakue/internal/core"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

type AuthService struct {
	users  UserStore
	tokens TokenIssuer
}

func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates the user with a personal account and default categories.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (core.User, core.Account, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	var verr core.ValidationErrors
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		verr.Add("name", "Name must be between 2-100 characters")
	} else if !lettersAndSpaces(name) {
		verr.Add("name", "Name can only contain letters and spaces")
	}
	if !validEmail(email) {
		verr.Add("email", "Valid email is required")
	}
	if utf8.RuneCountInString(password) < 8 {
		verr.Add("password", "Password must be at least 8 characters")
	} else if !strongPassword(password) {
		verr.Add("password", "Password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
	if err := verr.Err(); err != nil {
		return core.User{}, core.Account{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return core.User{}, core.Account{}, err
	}

	user, account, err := s.users.CreateUserWithDefaults(ctx, name, email, hash)
	if err != nil {
		return core.User{}, core.Account{}, err
	}
	return user, account, nil
}

// Login checks the credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, core.User, error) {
	email = normalizeEmail(email)

	var verr core.ValidationErrors
	if !validEmail(email) {
		verr.Add("email", "Valid email is required")
	}
	if password == "" {
		verr.Add("password", "Password is required")
	}
	if err := verr.Err(); err != nil {
		return "", core.User{}, err
	}

	user, hash, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		slog.InfoContext(ctx, "Login failed", "reason", "unknown email")
		return "", core.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", core.User{}, fmt.Errorf("load user: %w", err)
	}

	if err := auth.CheckPassword(hash, password); err != nil {
		slog.InfoContext(ctx, "Login failed", "reason", "wrong password", "user_id", user.ID)
		return "", core.User{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", core.User{}, err
	}

	slog.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return token, user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndexByte(email, '@')
	return at > 0 && strings.Contains(email[at+1:], ".")
}

func lettersAndSpaces(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

func strongPassword(p string) bool {
	var upper, lower, digit bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
