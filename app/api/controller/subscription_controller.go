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

type SubscriptionController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewSubscriptionController(managers *manager.Managers, res runtime.Resource) *SubscriptionController {
	return &SubscriptionController{
		res:      res,
		managers: managers,
	}
}

func (c *SubscriptionController) List(ec echo.Context) error {
	ctx := ec.Request().Context()

	data, err := c.managers.SubscriptionManager.List(ctx, parsePagination(ec))
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, data))
}

func (c *SubscriptionController) Get(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	subscription, err := c.managers.SubscriptionManager.Get(ctx, id)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, subscription))
}

func (c *SubscriptionController) Create(ec echo.Context) error {
	ctx := ec.Request().Context()
	var req request.CreateSubscriptionRequest
	if err := ec.Bind(&req); err != nil {
		c.res.Logger.Debug("failed to bind request", zap.Error(err))
		return writeError(ec, c.res.Logger, exception.NewValidationError("invalid request body"))
	}
	if err := ec.Validate(&req); err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	subscription, err := c.managers.SubscriptionManager.Create(ctx, req)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusCreated, response.ToSuccessResponse(http.StatusCreated, subscription))
}

func (c *SubscriptionController) Update(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	var req request.UpdateSubscriptionRequest
	if err := ec.Bind(&req); err != nil {
		c.res.Logger.Debug("failed to bind request", zap.Error(err))
		return writeError(ec, c.res.Logger, exception.NewValidationError("invalid request body"))
	}
	if err := ec.Validate(&req); err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	subscription, err := c.managers.SubscriptionManager.Update(ctx, id, req)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(http.StatusOK, subscription))
}

func (c *SubscriptionController) Delete(ec echo.Context) error {
	ctx := ec.Request().Context()
	id, err := parseID(ec)
	if err != nil {
		return writeError(ec, c.res.Logger, err)
	}

	if err := c.managers.SubscriptionManager.Delete(ctx, id); err != nil {
		return writeError(ec, c.res.Logger, err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse[any](http.StatusOK, nil))
}
