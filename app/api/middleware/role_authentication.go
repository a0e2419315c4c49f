package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backend/school-platform/app/internal/runtime"
	"backend/school-platform/app/pkg/jwt"
)

type RoleAuthentication struct {
	jwt jwt.Jwt
	res runtime.Resource
}

func NewRoleAuthentication(res runtime.Resource) RoleAuthentication {
	newJwt := jwt.NewJwt(res.Config.JwtConfig)
	return RoleAuthentication{
		jwt: newJwt,
		res: res,
	}
}

// RequireRoles admits requests carrying a valid Bearer token whose role
// claim is in the allow-list. All rejections share one 401 body.
func (j RoleAuthentication) RequireRoles(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := j.extractToken(c)
			if err != nil {
				return unauthorizedResponse().WithInternal(err)
			}

			claims, err := j.jwt.ValidateToken(token)
			if err != nil {
				j.res.Logger.Debug("JWT validation failed", zap.Error(err))
				return unauthorizedResponse().WithInternal(err)
			}

			if claims.Role == nil || *claims.Role == "" {
				return unauthorizedResponse()
			}

			if !j.hasAllowedRole(*claims.Role, allowed) {
				return unauthorizedResponse()
			}

			j.setUserContext(c, claims)
			return next(c)
		}
	}
}

func (j RoleAuthentication) hasAllowedRole(userRole string, allowed []string) bool {
	for _, role := range allowed {
		if userRole == role {
			return true
		}
	}
	return false
}

func (j RoleAuthentication) setUserContext(c echo.Context, claims *jwt.Claims) {
	if claims.UserID != nil {
		c.Set(contextUserID, *claims.UserID)
	}
	if claims.Email != nil {
		c.Set(contextEmail, *claims.Email)
	}
	if claims.Role != nil {
		c.Set(contextRole, *claims.Role)
	}
	if claims.SchoolID != nil {
		c.Set(contextSchoolID, *claims.SchoolID)
	}
}

func (j RoleAuthentication) extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(authHeaderName)
	if authHeader == "" {
		return "", fmt.Errorf("authorization header missing")
	}

	parts := strings.SplitN(authHeader, " ", tokenParts)
	if len(parts) != tokenParts || !strings.EqualFold(parts[0], jwt.TokenTypeBearer) {
		return "", fmt.Errorf("invalid authorization header format")
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", fmt.Errorf("invalid authorization header format")
	}

	return token, nil
}
