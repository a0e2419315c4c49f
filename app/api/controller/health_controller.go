package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backend/school-platform/app/api/client/response"
	"backend/school-platform/app/internal/runtime"
	"backend/school-platform/app/manager"
)

type HealthController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewHealthController(managers *manager.Managers, res runtime.Resource) *HealthController {
	return &HealthController{
		res:      res,
		managers: managers,
	}
}

func (c *HealthController) HealthCheck(ec echo.Context) error {
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, response.HealthResponse{
		Status: "up",
	}))
}
