// Package middleware guards routes with two mechanisms: JWT Bearer tokens
// carrying a role claim, and HTTP Basic credentials for privileged
// operational endpoints. Failures are reported with a uniform body so a
// probing client cannot tell a missing header from a bad signature.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backend/school-platform/app/api/client/exception"
	"backend/school-platform/app/api/client/response"
)

const (
	// Context keys
	contextUserID   = "user_id"
	contextEmail    = "email"
	contextRole     = "role"
	contextSchoolID = "school_id"

	// Token constants
	basicPrefix    = "basic"
	tokenParts     = 2
	authHeaderName = "Authorization"

	// Error messages
	errMsgUnauthorized = "unauthorized"
)

func unauthorizedResponse() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, response.ErrorModel{
		Message: errMsgUnauthorized,
		Status:  exception.StatusUnauthorized,
	})
}
