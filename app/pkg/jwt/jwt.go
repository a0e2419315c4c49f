package jwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"backend/school-platform/app/internal/config"
)

const (
	TokenTypeBearer = "Bearer"
)

type AccessToken struct {
	Token     string
	ExpiredAt time.Time
}

type DefaultJwt struct {
	config config.JwtConfig
}

func NewJwt(jwtConfig config.JwtConfig) Jwt {
	return &DefaultJwt{
		config: jwtConfig,
	}
}

func (m *DefaultJwt) GetExpirationTime() int64 {
	return int64(m.config.AccessExpiration.Seconds())
}

func (m *DefaultJwt) ParseToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.config.SecretKey), nil
	})
}

func (m *DefaultJwt) ValidateToken(token string) (*Claims, error) {
	t, err := m.ParseToken(token)
	if err != nil {
		return nil, err
	}

	if !t.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := t.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

func (m *DefaultJwt) GenerateAccessToken(
	userID *uuid.UUID,
	name *string,
	email *string,
	role *string,
	schoolID *uuid.UUID,
) (*AccessToken, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Name:     name,
		Email:    email,
		Role:     role,
		SchoolID: schoolID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.AccessExpiration)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.config.SecretKey))
	if err != nil {
		return nil, err
	}
	return &AccessToken{
		Token:     signed,
		ExpiredAt: claims.RegisteredClaims.ExpiresAt.Time,
	}, nil
}

func (m *DefaultJwt) GetClaims(c echo.Context) (*Claims, error) {
	authorizationHeader := c.Request().Header.Get("Authorization")
	if strings.TrimSpace(authorizationHeader) == "" {
		return nil, fmt.Errorf("missing authorization header")
	}

	// Remove "Bearer " prefix
	token := strings.Replace(authorizationHeader, "Bearer ", "", 1)

	claims, err := m.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	return claims, nil
}
