package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backend/school-platform/app/api/client/exception"
	"backend/school-platform/app/api/client/request"
	"backend/school-platform/app/api/client/response"
	"backend/school-platform/app/internal/runtime"
	"backend/school-platform/app/manager"
)

type AuthController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewAuthController(managers *manager.Managers, res runtime.Resource) *AuthController {
	return &AuthController{
		res:      res,
		managers: managers,
	}
}

func (c *AuthController) Register(ec echo.Context) error {
	ctx := ec.Request().Context()
	var req request.RegisterRequest
	if err := ec.Bind(&req); err != nil {
		c.res.Logger.Debug("failed to bind request", zap.Error(err))
		return writeError(ec, c.res.Logger, exception.NewValidationError("invalid request body"))
	}
	if err := ec.Validate(&req); err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	res, err := c.managers.AuthManager.Register(ctx, req)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusCreated, response.ToSuccessResponse(http.StatusCreated, res))
}
