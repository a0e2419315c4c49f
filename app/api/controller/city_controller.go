package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backend/school-platform/app/api/client/response"
	"backend/school-platform/app/internal/runtime"
	"backend/school-platform/app/manager"
)

type CityController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewCityController(managers *manager.Managers, res runtime.Resource) *CityController {
	return &CityController{
		res:      res,
		managers: managers,
	}
}

func (c *CityController) List(ec echo.Context) error {
	ctx := ec.Request().Context()

	cities, err := c.managers.CityManager.List(ctx)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, cities))
}

func (c *CityController) Sync(ec echo.Context) error {
	ctx := ec.Request().Context()

	cities, err := c.managers.CityManager.Sync(ctx)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, cities))
}
