package auth

import (
	"fmt"
	"time"

	"carebase-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents the identity the session provider asserts for a
// request: who is acting, for which company, and in what role. The
// scheduling engine trusts these claims and only applies role guards.
type AuthClaims struct {
	UserID    uuid.UUID   `json:"user_id"`
	CompanyID uuid.UUID   `json:"company_id"`
	Role      models.Role `json:"role"`
	Email     string      `json:"email"`
	jwt.RegisteredClaims
}

// Actor is the acting user as seen by the service layer
type Actor struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      models.Role
}

// Actor converts validated claims into a service-layer actor
func (c *AuthClaims) Actor() *Actor {
	return &Actor{UserID: c.UserID, CompanyID: c.CompanyID, Role: c.Role}
}

// AuthService validates bearer tokens issued by the identity provider
type AuthService struct {
	secret   []byte
	issuer   string
	tokenTTL time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string) *AuthService {
	return &AuthService{
		secret:   []byte(secret),
		issuer:   "carebase-backend",
		tokenTTL: 12 * time.Hour,
	}
}

// ValidateJWT parses and validates a bearer token and returns its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	if claims.UserID == uuid.Nil || claims.CompanyID == uuid.Nil {
		return nil, fmt.Errorf("token is missing identity claims")
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("token carries unknown role %q", claims.Role)
	}
	return claims, nil
}

// GenerateJWT issues a signed token for the given identity. Used by the
// demo seed script and tests; production tokens come from the identity
// provider.
func (s *AuthService) GenerateJWT(userID, companyID uuid.UUID, role models.Role, email string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
