package manager

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"backend/school-platform/app/api/client/exception"
	"backend/school-platform/app/api/client/request"
	"backend/school-platform/app/api/client/response"
	"backend/school-platform/app/database/entity"
	"backend/school-platform/app/database/repository"
	queryUtil "backend/school-platform/app/database/repository/query_utils"
	"backend/school-platform/app/internal/runtime"
	pagingUtil "backend/school-platform/app/pkg/util/paging"
)

const (
	ErrRoleNotFound      = "role not found"
	ErrRoleAlreadyExists = "role name already exists"
)

type RoleManager interface {
	List(ctx context.Context, paging request.PaginationRequest) (*response.PaginatedData[entity.Role], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Role, error)
	Create(ctx context.Context, request request.CreateRoleRequest) (*entity.Role, error)
	Update(ctx context.Context, id uuid.UUID, request request.UpdateRoleRequest) (*entity.Role, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DefaultRoleManager struct {
	logger       *zap.Logger
	res          runtime.Resource
	repositories *repository.Repositories
}

func NewRoleManager(res runtime.Resource, repositories *repository.Repositories) RoleManager {
	return &DefaultRoleManager{
		res:          res,
		logger:       res.Logger,
		repositories: repositories,
	}
}

func (d *DefaultRoleManager) List(ctx context.Context, paging request.PaginationRequest) (*response.PaginatedData[entity.Role], error) {
	if err := validatePaging(paging); err != nil {
		return nil, err
	}

	roles, total, err := d.repositories.RoleRepository.List(ctx, paging.Offset(), paging.PageSize)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}

	data := response.ToPaginatedData(roles, paging.Page, paging.PageSize, pagingUtil.TotalPages(total, paging.PageSize), total)
	return &data, nil
}

func (d *DefaultRoleManager) Get(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	role, err := d.repositories.RoleRepository.FindByID(ctx, id)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrRoleNotFound)
		}
		return nil, exception.NewInternalError(err)
	}
	return role, nil
}

func (d *DefaultRoleManager) Create(ctx context.Context, req request.CreateRoleRequest) (*entity.Role, error) {
	now := time.Now()
	role := &entity.Role{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	role, err := d.repositories.RoleRepository.Insert(ctx, role)
	if err != nil {
		if queryUtil.IsUniqueViolation(err) {
			return nil, exception.NewConflictError(ErrRoleAlreadyExists)
		}
		return nil, exception.NewInternalError(err)
	}
	return role, nil
}

func (d *DefaultRoleManager) Update(ctx context.Context, id uuid.UUID, req request.UpdateRoleRequest) (*entity.Role, error) {
	role, err := d.repositories.RoleRepository.FindByID(ctx, id)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrRoleNotFound)
		}
		return nil, exception.NewInternalError(err)
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	role.UpdatedAt = time.Now()

	updated, err := d.repositories.RoleRepository.Update(ctx, *role)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrRoleNotFound)
		}
		if queryUtil.IsUniqueViolation(err) {
			return nil, exception.NewConflictError(ErrRoleAlreadyExists)
		}
		return nil, exception.NewInternalError(err)
	}
	return updated, nil
}

// Delete is idempotent. Removing an absent or already removed role is a
// success so retries never surface spurious failures.
func (d *DefaultRoleManager) Delete(ctx context.Context, id uuid.UUID) error {
	if err := d.repositories.RoleRepository.DeleteByID(ctx, id); err != nil {
		return exception.NewInternalError(err)
	}
	return nil
}
