package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backend/school-platform/app/api/client/response"
	"backend/school-platform/app/internal/runtime"
	"backend/school-platform/app/manager"
)

type ProvinceController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewProvinceController(managers *manager.Managers, res runtime.Resource) *ProvinceController {
	return &ProvinceController{
		res:      res,
		managers: managers,
	}
}

func (c *ProvinceController) List(ec echo.Context) error {
	ctx := ec.Request().Context()

	provinces, err := c.managers.ProvinceManager.List(ctx)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, provinces))
}

func (c *ProvinceController) Sync(ec echo.Context) error {
	ctx := ec.Request().Context()

	provinces, err := c.managers.ProvinceManager.Sync(ctx)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, provinces))
}
