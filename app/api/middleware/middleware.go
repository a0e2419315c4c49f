package middleware

import (
	"github.com/labstack/echo/v4"

	"backend/school-platform/app/internal/runtime"
)

type Middleware struct {
	RoleAuthentication      RoleAuthentication
	HttpBasicAuthentication HttpBasicAuthentication
}

func NewMiddleware(res runtime.Resource) *Middleware {
	return &Middleware{
		RoleAuthentication:      NewRoleAuthentication(res),
		HttpBasicAuthentication: NewHttpBasicAuthentication(res),
	}
}

func (m *Middleware) RequireRoles(allowed ...string) echo.MiddlewareFunc {
	return m.RoleAuthentication.RequireRoles(allowed...)
}

func (m *Middleware) RequireBasicAuth() echo.MiddlewareFunc {
	return m.HttpBasicAuthentication.Require()
}
