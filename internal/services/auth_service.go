package services

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// AuthService issues and validates session tokens for the storefront's
// single shopper account.
type AuthService struct {
	profiles   *ProfileService
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(profiles *ProfileService, jwtSecret string) *AuthService {
	return &AuthService{
		profiles:   profiles,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// Login authenticates against the profile record and returns a JWT
// token if successful.
func (s *AuthService) Login(email, password string) (string, error) {
	profile, err := s.profiles.Get()
	if err != nil {
		return "", err
	}

	// Do not reveal whether the email or the password was wrong
	if profile.Email != email {
		return "", fmt.Errorf("invalid credentials")
	}
	if err := s.profiles.VerifyPassword(password); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": profile.Email,
		"name":  profile.Name,
		"exp":   time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":   time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims
// if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
