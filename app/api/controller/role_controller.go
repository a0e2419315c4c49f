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

type RoleController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewRoleController(managers *manager.Managers, res runtime.Resource) *RoleController {
	return &RoleController{
		res:      res,
		managers: managers,
	}
}

func (c *RoleController) List(ec echo.Context) error {
	ctx := ec.Request().Context()

	data, err := c.managers.RoleManager.List(ctx, parsePagination(ec))
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, data))
}

func (c *RoleController) Get(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	role, err := c.managers.RoleManager.Get(ctx, id)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, role))
}

func (c *RoleController) Create(ec echo.Context) error {
	ctx := ec.Request().Context()
	var req request.CreateRoleRequest
	if err := ec.Bind(&req); err != nil {
		c.res.Logger.Debug("failed to bind request", zap.Error(err))
		return writeError(ec, c.res.Logger, exception.NewValidationError("invalid request body"))
	}
	if err := ec.Validate(&req); err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	role, err := c.managers.RoleManager.Create(ctx, req)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusCreated, response.ToSuccessResponse(http.StatusCreated, role))
}

func (c *RoleController) Update(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	var req request.UpdateRoleRequest
	if err := ec.Bind(&req); err != nil {
		c.res.Logger.Debug("failed to bind request", zap.Error(err))
		return writeError(ec, c.res.Logger, exception.NewValidationError("invalid request body"))
	}
	if err := ec.Validate(&req); err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	role, err := c.managers.RoleManager.Update(ctx, id, req)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, role))
}

func (c *RoleController) Delete(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	if err := c.managers.RoleManager.Delete(ctx, id); err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse[any](http.StatusOK, nil))
}
