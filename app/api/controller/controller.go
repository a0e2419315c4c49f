package controller

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backend/school-platform/app/api/client/exception"
	"backend/school-platform/app/api/client/request"
	"backend/school-platform/app/api/client/response"
	"backend/school-platform/app/internal/runtime"
	"backend/school-platform/app/manager"
)

type Controllers struct {
	AuthController             *AuthController
	UserController             *UserController
	RoleController             *RoleController
	SchoolController           *SchoolController
	SubscriptionController     *SubscriptionController
	SubscriptionTypeController *SubscriptionTypeController
	ProvinceController         *ProvinceController
	CityController             *CityController
	HealthController           *HealthController
}

func NewControllers(managers *manager.Managers, res runtime.Resource) *Controllers {
	return &Controllers{
		AuthController:             NewAuthController(managers, res),
		UserController:             NewUserController(managers, res),
		RoleController:             NewRoleController(managers, res),
		SchoolController:           NewSchoolController(managers, res),
		SubscriptionController:     NewSubscriptionController(managers, res),
		SubscriptionTypeController: NewSubscriptionTypeController(managers, res),
		ProvinceController:         NewProvinceController(managers, res),
		CityController:             NewCityController(managers, res),
		HealthController:           NewHealthController(managers, res),
	}
}

// parsePagination fills defaults only for absent or unparsable values. An
// explicit "page=0" survives to the manager, which rejects it.
func parsePagination(ec echo.Context) request.PaginationRequest {
	p := request.PaginationRequest{Page: 1, PageSize: 10}

	if raw := ec.QueryParam("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			p.Page = v
		}
	}
	if raw := ec.QueryParam("page_size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			p.PageSize = v
		}
	}

	return p
}

func parseID(ec echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ec.Param("id"))
	if err != nil {
		e := exception.NewValidationError("invalid id")
		e.Err = err
		return uuid.Nil, e
	}
	return id, nil
}

// writeError renders the failure envelope. Untyped errors are treated as
// internal so raw causes never leak to clients.
func writeError(ec echo.Context, logger *zap.Logger, err error) error {
	if e, ok := exception.AsError(err); ok {
		if e.HTTPCode >= http.StatusInternalServerError {
			logger.Error("request failed", zap.Error(err))
		}
		return ec.JSON(e.HTTPCode, response.ErrorModel{
			Message: e.Message,
			Status:  e.Status,
		})
	}

	logger.Error("request failed", zap.Error(err))
	return ec.JSON(http.StatusInternalServerError, response.ErrorModel{
		Message: "internal server error",
		Status:  exception.StatusFailed,
	})
}
