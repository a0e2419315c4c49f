package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backend/school-platform/app/internal/runtime"
)

type HttpBasicAuthentication struct {
	res runtime.Resource
}

func NewHttpBasicAuthentication(res runtime.Resource) HttpBasicAuthentication {
	return HttpBasicAuthentication{
		res: res,
	}
}

// Require compares the decoded "username:password" pair against the
// configured privileged secret in constant time.
func (hb HttpBasicAuthentication) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			credentials, err := hb.extractCredentials(c)
			if err != nil {
				hb.res.Logger.Debug("basic authentication failed", zap.Error(err))
				c.Response().Header().Set("WWW-Authenticate", "Basic realm=\"Restricted\"")
				return unauthorizedResponse().WithInternal(err)
			}

			secret := hb.res.Config.BasicAuthConfig.Secret
			if subtle.ConstantTimeCompare([]byte(credentials), []byte(secret)) != 1 {
				c.Response().Header().Set("WWW-Authenticate", "Basic realm=\"Restricted\"")
				return unauthorizedResponse()
			}

			return next(c)
		}
	}
}

func (hb HttpBasicAuthentication) extractCredentials(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(authHeaderName)
	if authHeader == "" {
		return "", fmt.Errorf("authorization header missing")
	}

	parts := strings.SplitN(authHeader, " ", tokenParts)
	if len(parts) != tokenParts || strings.ToLower(parts[0]) != basicPrefix {
		return "", fmt.Errorf("invalid authorization header format")
	}

	payload, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid basic authentication payload")
	}

	if !strings.Contains(string(payload), ":") {
		return "", fmt.Errorf("invalid basic authentication payload")
	}

	return string(payload), nil
}
