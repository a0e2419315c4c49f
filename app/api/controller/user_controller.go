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

type UserController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewUserController(managers *manager.Managers, res runtime.Resource) *UserController {
	return &UserController{
		res:      res,
		managers: managers,
	}
}

func (c *UserController) List(ec echo.Context) error {
	ctx := ec.Request().Context()

	data, err := c.managers.UserManager.List(ctx, parsePagination(ec))
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, data))
}

func (c *UserController) Get(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	user, err := c.managers.UserManager.Get(ctx, id)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, user))
}

func (c *UserController) Create(ec echo.Context) error {
	ctx := ec.Request().Context()
	var req request.CreateUserRequest
	if err := ec.Bind(&req); err != nil {
		c.res.Logger.Debug("failed to bind request", zap.Error(err))
		return writeError(ec, c.res.Logger, exception.NewValidationError("invalid request body"))
	}
	if err := ec.Validate(&req); err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	user, err := c.managers.UserManager.Create(ctx, req)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusCreated, response.ToSuccessResponse(http.StatusCreated, user))
}

func (c *UserController) Update(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	var req request.UpdateUserRequest
	if err := ec.Bind(&req); err != nil {
		c.res.Logger.Debug("failed to bind request", zap.Error(err))
		return writeError(ec, c.res.Logger, exception.NewValidationError("invalid request body"))
	}
	if err := ec.Validate(&req); err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	user, err := c.managers.UserManager.Update(ctx, id, req)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, user))
}

func (c *UserController) Delete(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	if err := c.managers.UserManager.Delete(ctx, id); err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse[any](http.StatusOK, nil))
}
