package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backend/school-platform/app/api/client/exception"
	"backend/school-platform/app/api/client/request"
	"backend/school-platform/app/api/client/response"
	"backend/school-platform/app/api/controller"
	"backend/school-platform/app/database/entity"
	"backend/school-platform/app/internal/runtime"
	"backend/school-platform/app/internal/validator"
	"backend/school-platform/app/manager"
)

// stubRoleManager records the paging it receives and plays back canned
// results, so the controller contract can be checked without a database.
type stubRoleManager struct {
	lastPaging request.PaginationRequest
	listData   *response.PaginatedData[entity.Role]
	listErr    error
	createErr  error
}

func (s *stubRoleManager) List(ctx context.Context, paging request.PaginationRequest) (*response.PaginatedData[entity.Role], error) {
	s.lastPaging = paging
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listData, nil
}

func (s *stubRoleManager) Get(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	return nil, exception.NewNotFoundError("role not found")
}

func (s *stubRoleManager) Create(ctx context.Context, req request.CreateRoleRequest) (*entity.Role, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &entity.Role{ID: uuid.New(), Name: req.Name}, nil
}

func (s *stubRoleManager) Update(ctx context.Context, id uuid.UUID, req request.UpdateRoleRequest) (*entity.Role, error) {
	return nil, exception.NewNotFoundError("role not found")
}

func (s *stubRoleManager) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func newRoleTestContext(t *testing.T, stub *stubRoleManager, req *http.Request) (*controller.Controllers, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	res := runtime.Resource{Logger: zap.NewNop()}

	e := echo.New()
	e.Validator = validator.NewValidators(res)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	controllers := controller.NewControllers(&manager.Managers{RoleManager: stub}, res)
	return controllers, ctx, rec
}

func TestRoleListDefaultsPagination(t *testing.T) {
	stub := &stubRoleManager{
		listData: &response.PaginatedData[entity.Role]{Data: []entity.Role{}, Page: 1, PageSize: 10},
	}
	req := httptest.NewRequest(http.MethodGet, "/roles", nil)
	controllers, ctx, rec := newRoleTestContext(t, stub, req)

	require.NoError(t, controllers.RoleController.List(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, stub.lastPaging.Page)
	assert.Equal(t, 10, stub.lastPaging.PageSize)
}

func TestRoleListPassesExplicitZeroPageThrough(t *testing.T) {
	stub := &stubRoleManager{listErr: exception.NewValidationError("page must be at least 1")}
	req := httptest.NewRequest(http.MethodGet, "/roles?page=0&page_size=5", nil)
	controllers, ctx, rec := newRoleTestContext(t, stub, req)

	require.NoError(t, controllers.RoleController.List(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, stub.lastPaging.Page)
	assert.Equal(t, 5, stub.lastPaging.PageSize)
}

func TestRoleListUnparsableParamsFallBackToDefaults(t *testing.T) {
	stub := &stubRoleManager{
		listData: &response.PaginatedData[entity.Role]{Data: []entity.Role{}, Page: 1, PageSize: 10},
	}
	req := httptest.NewRequest(http.MethodGet, "/roles?page=abc&page_size=xyz", nil)
	controllers, ctx, _ := newRoleTestContext(t, stub, req)

	require.NoError(t, controllers.RoleController.List(ctx))
	assert.Equal(t, 1, stub.lastPaging.Page)
	assert.Equal(t, 10, stub.lastPaging.PageSize)
}

func TestRoleCreateSuccessEnvelope(t *testing.T) {
	stub := &stubRoleManager{}
	req := httptest.NewRequest(http.MethodPost, "/roles", strings.NewReader(`{"name":"admin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	controllers, ctx, rec := newRoleTestContext(t, stub, req)

	require.NoError(t, controllers.RoleController.Create(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data    entity.Role `json:"data"`
		Message string      `json:"message"`
		Code    int         `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Message)
	assert.Equal(t, http.StatusCreated, body.Code)
	assert.Equal(t, "admin", body.Data.Name)
}

func TestRoleCreateBlankNameRejected(t *testing.T) {
	stub := &stubRoleManager{}
	req := httptest.NewRequest(http.MethodPost, "/roles", strings.NewReader(`{"name":"   "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	controllers, ctx, rec := newRoleTestContext(t, stub, req)

	require.NoError(t, controllers.RoleController.Create(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.ErrorModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, exception.StatusFailed, body.Status)
	assert.Contains(t, body.Message, "validation failed")
}

func TestRoleGetInvalidIDRejected(t *testing.T) {
	stub := &stubRoleManager{}
	req := httptest.NewRequest(http.MethodGet, "/roles/not-a-uuid", nil)
	controllers, ctx, rec := newRoleTestContext(t, stub, req)
	ctx.SetParamNames("id")
	ctx.SetParamValues("not-a-uuid")

	require.NoError(t, controllers.RoleController.Get(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.ErrorModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid id", body.Message)
}

func TestRoleCreateInternalErrorHidesCause(t *testing.T) {
	stub := &stubRoleManager{
		createErr: exception.NewInternalError(assert.AnError),
	}
	req := httptest.NewRequest(http.MethodPost, "/roles", strings.NewReader(`{"name":"admin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	controllers, ctx, rec := newRoleTestContext(t, stub, req)

	require.NoError(t, controllers.RoleController.Create(ctx))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body response.ErrorModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
