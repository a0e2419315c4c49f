package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"backend/school-platform/app/api/controller"
	"backend/school-platform/app/api/middleware"
	"backend/school-platform/app/database/repository"
	"backend/school-platform/app/internal/runtime"
	"backend/school-platform/app/internal/validator"
	ctxutil "backend/school-platform/app/pkg/util/context"
	echoUtil "backend/school-platform/app/pkg/util/echo"
)

const (
	healthPath = "/health"

	// Route prefixes
	authPrefix             = "/auth"
	provincePrefix         = "/provinces"
	cityPrefix             = "/cities"
	rolePrefix             = "/roles"
	schoolPrefix           = "/schools"
	subscriptionPrefix     = "/subscriptions"
	subscriptionTypePrefix = "/subscription_types"
	userPrefix             = "/users"
)

type Router struct {
	*echo.Echo
	res          runtime.Resource
	vals         *validator.Validators
	middleware   *middleware.Middleware
	controllers  *controller.Controllers
	repositories *repository.Repositories
}

func NewRouter(
	res runtime.Resource,
	vals *validator.Validators,
	middleware *middleware.Middleware,
	controllers *controller.Controllers,
	repositories *repository.Repositories,
) *Router {
	if controllers == nil {
		panic("controllers cannot be nil")
	}
	if vals == nil {
		panic("validators cannot be nil")
	}

	r := &Router{
		Echo:         echo.New(),
		res:          res,
		vals:         vals,
		middleware:   middleware,
		controllers:  controllers,
		repositories: repositories,
	}

	r.setupEcho()
	r.setupMiddlewares()
	r.setupHealthRoutes()
	r.setupRoutes()

	return r
}

func (r *Router) setupEcho() {
	r.Echo.HidePort = true
	r.Echo.HideBanner = true
	r.Echo.Validator = r.vals

	env := ctxutil.GetAppModeFromEnv()
	if env == ctxutil.AppModeDev || env == ctxutil.AppModeLocal {
		r.Echo.Debug = true
	}
}

func (r *Router) setupMiddlewares() {
	r.Echo.Use(echoMiddleware.RequestID())
	r.Echo.Use(echoUtil.SetupCORSMiddleware(r.res))
	r.Echo.Use(echoUtil.SetupLoggerMiddleware(r.res))
}

func (r *Router) setupHealthRoutes() {
	r.Echo.GET(healthPath, r.controllers.HealthController.HealthCheck)
}

func (r *Router) setupRoutes() {
	r.setupAuthRoutes()
	r.setupRegionRoutes()
	r.setupRoleRoutes()
	r.setupSchoolRoutes()
	r.setupSubscriptionRoutes()
	r.setupSubscriptionTypeRoutes()
	r.setupUserRoutes()
}

func (r *Router) setupAuthRoutes() {
	authGroup := r.Echo.Group(authPrefix)
	authGroup.POST("/register", r.controllers.AuthController.Register)
}

// POST on the region collections triggers a sync against the upstream
// geographic dataset.
func (r *Router) setupRegionRoutes() {
	provinceGroup := r.Echo.Group(provincePrefix)
	provinceGroup.GET("", r.controllers.ProvinceController.List)
	provinceGroup.POST("", r.controllers.ProvinceController.Sync)

	cityGroup := r.Echo.Group(cityPrefix)
	cityGroup.GET("", r.controllers.CityController.List)
	cityGroup.POST("", r.controllers.CityController.Sync)
}

func (r *Router) setupRoleRoutes() {
	roleGroup := r.Echo.Group(rolePrefix)
	roleGroup.GET("", r.controllers.RoleController.List)
	roleGroup.POST("", r.controllers.RoleController.Create)
	roleGroup.GET("/:id", r.controllers.RoleController.Get)
	roleGroup.PUT("/:id", r.controllers.RoleController.Update)
	roleGroup.DELETE("/:id", r.controllers.RoleController.Delete)
}

func (r *Router) setupSchoolRoutes() {
	schoolGroup := r.Echo.Group(schoolPrefix)
	schoolGroup.GET("", r.controllers.SchoolController.List)
	schoolGroup.POST("", r.controllers.SchoolController.Create)
	schoolGroup.GET("/:id", r.controllers.SchoolController.Get)
	schoolGroup.PUT("/:id", r.controllers.SchoolController.Update)
	schoolGroup.DELETE("/:id", r.controllers.SchoolController.Delete)
}

func (r *Router) setupSubscriptionRoutes() {
	subscriptionGroup := r.Echo.Group(subscriptionPrefix)
	subscriptionGroup.GET("", r.controllers.SubscriptionController.List)
	subscriptionGroup.POST("", r.controllers.SubscriptionController.Create)
	subscriptionGroup.GET("/:id", r.controllers.SubscriptionController.Get)
	subscriptionGroup.PUT("/:id", r.controllers.SubscriptionController.Update)
	subscriptionGroup.DELETE("/:id", r.controllers.SubscriptionController.Delete)
}

func (r *Router) setupSubscriptionTypeRoutes() {
	subscriptionTypeGroup := r.Echo.Group(subscriptionTypePrefix)
	subscriptionTypeGroup.GET("", r.controllers.SubscriptionTypeController.List)
	subscriptionTypeGroup.POST("", r.controllers.SubscriptionTypeController.Create)
	subscriptionTypeGroup.GET("/:id", r.controllers.SubscriptionTypeController.Get)
	subscriptionTypeGroup.PUT("/:id", r.controllers.SubscriptionTypeController.Update)
	subscriptionTypeGroup.DELETE("/:id", r.controllers.SubscriptionTypeController.Delete)
}

// User management is an operator surface and sits behind the privileged
// Basic gate.
func (r *Router) setupUserRoutes() {
	userGroup := r.Echo.Group(userPrefix, r.middleware.RequireBasicAuth())
	userGroup.GET("", r.controllers.UserController.List)
	userGroup.POST("", r.controllers.UserController.Create)
	userGroup.GET("/:id", r.controllers.UserController.Get)
	userGroup.PUT("/:id", r.controllers.UserController.Update)
	userGroup.DELETE("/:id", r.controllers.UserController.Delete)
}
