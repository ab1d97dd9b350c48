package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"colectivo/internal/domain"
	"colectivo/internal/domain/models"
	"colectivo/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials hides whether the user or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Claims carried by dashboard tokens.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	Users     UserStore
	Secret    []byte
	TTL       time.Duration
	RequestID string
	Now       func() time.Time
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login checks the password and issues an HS256 token.
func (s AuthService) Login(ctx context.Context, username, password string) (string, models.User, error) {
	u, err := s.Users.GetByUsername(ctx, strings.TrimSpace(username))
	if domain.IsNotFound(err) {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", models.User{}, err
	}
	if !u.Active() {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.Issue(u)
	if err != nil {
		return "", models.User{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", u.ID))
	return token, u, nil
}

func (s AuthService) Issue(u models.User) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := s.now()
	claims := Claims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the caller it identifies.
func (s AuthService) Verify(token string) (domain.Caller, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return domain.Caller{}, err
	}
	if !parsed.Valid {
		return domain.Caller{}, errors.New("invalid token")
	}
	return domain.Caller{UserID: claims.UserID, Role: claims.Role, Source: "jwt"}, nil
}

// HashPassword is used when seeding accounts.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
