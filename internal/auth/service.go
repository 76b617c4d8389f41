package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT token claims
type Claims struct {
	Username string `json:"username" example:"jdoe"`
	Email    string `json:"email" example:"jdoe@example.com"`
	Role     string `json:"role" example:"instructor"`
	jwt.RegisteredClaims
}

// Service issues and validates the bearer tokens the API accepts
type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates a new authentication service
func NewService(secret string, tokenTTL time.Duration) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &Service{secret: []byte(secret), tokenTTL: tokenTTL}, nil
}

// GenerateJWT creates a signed token for a user
func (s *Service) GenerateJWT(username, email, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		Email:    email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "gradebench-backend",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *Service) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
