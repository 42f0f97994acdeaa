package security

import (
	"errors"
	"fmt"
	"time"

	"social-spectrum-server/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionTokenType = "session"
	tokenIssuer      = "social-spectrum-server"
)

var (
	ErrEmptySecret  = errors.New("jwt secret is not configured")
	ErrInvalidToken = errors.New("invalid token")
)

// SessionClaims is the decoded payload of a session token.
type SessionClaims struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

func NewTokenService(cfg *config.Config) *TokenService {
	hours := cfg.JWT.ExpirationHours
	if hours <= 0 {
		hours = 24 * 90
	}
	return &TokenService{
		secret:   []byte(cfg.JWT.Secret),
		lifetime: time.Duration(hours) * time.Hour,
		now:      time.Now,
	}
}

func (s *TokenService) Issue(userID uint) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrEmptySecret
	}
	now := s.now()
	claims := SessionClaims{
		ID:   userID,
		Type: sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify decodes a session token. Any failure (bad signature, expiry, wrong
// algorithm, wrong type, missing subject) returns an error.
func (s *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrEmptySecret
	}
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != sessionTokenType || claims.ID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
