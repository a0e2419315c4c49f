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

const logoFormField = "logo"

type SchoolController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewSchoolController(managers *manager.Managers, res runtime.Resource) *SchoolController {
	return &SchoolController{
		res:      res,
		managers: managers,
	}
}

func (c *SchoolController) List(ec echo.Context) error {
	ctx := ec.Request().Context()

	data, err := c.managers.SchoolManager.List(ctx, parsePagination(ec))
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, data))
}

func (c *SchoolController) Get(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	school, err := c.managers.SchoolManager.Get(ctx, id)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, school))
}

// Create accepts a multipart form so the logo can ride along with the
// school fields. The logo part is optional.
func (c *SchoolController) Create(ec echo.Context) error {
	ctx := ec.Request().Context()
	var req request.CreateSchoolRequest
	if err := ec.Bind(&req); err != nil {
		c.res.Logger.Debug("failed to bind request", zap.Error(err))
		return writeError(ec, c.res.Logger, exception.NewValidationError("invalid request body"))
	}
	if err := ec.Validate(&req); err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	logo, err := ec.FormFile(logoFormField)
	if err != nil {
		// http.ErrMissingFile and absent multipart bodies both mean no logo
		logo = nil
	}

	school, err := c.managers.SchoolManager.Create(ctx, req, logo)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusCreated, response.ToSuccessResponse(http.StatusCreated, school))
}

func (c *SchoolController) Update(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	var req request.UpdateSchoolRequest
	if err := ec.Bind(&req); err != nil {
		c.res.Logger.Debug("failed to bind request", zap.Error(err))
		return writeError(ec, c.res.Logger, exception.NewValidationError("invalid request body"))
	}
	if err := ec.Validate(&req); err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	school, err := c.managers.SchoolManager.Update(ctx, id, req)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, school))
}

func (c *SchoolController) Delete(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	if err := c.managers.SchoolManager.Delete(ctx, id); err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse[any](http.StatusOK, nil))
}
