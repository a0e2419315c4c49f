package jwt

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Claims struct {
	UserID   *uuid.UUID `json:"user_id,omitempty"`
	Name     *string    `json:"name,omitempty"`
	Email    *string    `json:"email,omitempty"`
	Role     *string    `json:"role,omitempty"`
	SchoolID *uuid.UUID `json:"school_id,omitempty"`
	jwt.RegisteredClaims
}

type Jwt interface {
	GetExpirationTime() int64
	ParseToken(token string) (*jwt.Token, error)
	ValidateToken(token string) (*Claims, error)
	GenerateAccessToken(
		userID *uuid.UUID,
		name *string,
		email *string,
		role *string,
		schoolID *uuid.UUID,
	) (*AccessToken, error)
	GetClaims(c echo.Context) (*Claims, error)
}
