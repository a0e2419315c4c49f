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

type SubscriptionTypeController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewSubscriptionTypeController(managers *manager.Managers, res runtime.Resource) *SubscriptionTypeController {
	return &SubscriptionTypeController{
		res:      res,
		managers: managers,
	}
}

func (c *SubscriptionTypeController) List(ec echo.Context) error {
	ctx := ec.Request().Context()

	data, err := c.managers.SubscriptionTypeManager.List(ctx, parsePagination(ec))
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, data))
}

func (c *SubscriptionTypeController) Get(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	view, err := c.managers.SubscriptionTypeManager.Get(ctx, id)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, view))
}

func (c *SubscriptionTypeController) Create(ec echo.Context) error {
	ctx := ec.Request().Context()
	var req request.CreateSubscriptionTypeRequest
	if err := ec.Bind(&req); err != nil {
		c.res.Logger.Debug("failed to bind request", zap.Error(err))
		return writeError(ec, c.res.Logger, exception.NewValidationError("invalid request body"))
	}
	if err := ec.Validate(&req); err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	subscriptionType, err := c.managers.SubscriptionTypeManager.Create(ctx, req)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusCreated, response.ToSuccessResponse(http.StatusCreated, subscriptionType))
}

func (c *SubscriptionTypeController) Update(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	var req request.UpdateSubscriptionTypeRequest
	if err := ec.Bind(&req); err != nil {
		c.res.Logger.Debug("failed to bind request", zap.Error(err))
		return writeError(ec, c.res.Logger, exception.NewValidationError("invalid request body"))
	}
	if err := ec.Validate(&req); err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	subscriptionType, err := c.managers.SubscriptionTypeManager.Update(ctx, id, req)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, subscriptionType))
}

func (c *SubscriptionTypeController) Delete(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	if err := c.managers.SubscriptionTypeManager.Delete(ctx, id); err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse[any](http.StatusOK, nil))
}
