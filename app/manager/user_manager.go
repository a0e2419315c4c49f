package manager

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"backend/school-platform/app/api/client/exception"
	"backend/school-platform/app/api/client/request"
	"backend/school-platform/app/api/client/response"
	userStatus "backend/school-platform/app/database/constant/user"
	"backend/school-platform/app/database/entity"
	"backend/school-platform/app/database/repository"
	queryUtil "backend/school-platform/app/database/repository/query_utils"
	"backend/school-platform/app/internal/runtime"
	"backend/school-platform/app/pkg/bcrypt"
	pagingUtil "backend/school-platform/app/pkg/util/paging"
)

const (
	ErrUserNotFound   = "user not found"
	ErrRoleUnknown    = "role does not exist"
	ErrSchoolUnknown  = "school does not exist"
	ErrUserEmailTaken = "email already registered"
	ErrUserPhoneTaken = "phone number already registered"
)

type UserManager interface {
	List(ctx context.Context, paging request.PaginationRequest) (*response.PaginatedData[entity.User], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, request request.CreateUserRequest) (*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, request request.UpdateUserRequest) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DefaultUserManager struct {
	logger       *zap.Logger
	res          runtime.Resource
	hasher       bcrypt.Hasher
	repositories *repository.Repositories
}

func NewUserManager(res runtime.Resource, hasher bcrypt.Hasher, repositories *repository.Repositories) UserManager {
	return &DefaultUserManager{
		res:          res,
		logger:       res.Logger,
		hasher:       hasher,
		repositories: repositories,
	}
}

func (d *DefaultUserManager) List(ctx context.Context, paging request.PaginationRequest) (*response.PaginatedData[entity.User], error) {
	if err := validatePaging(paging); err != nil {
		return nil, err
	}

	users, total, err := d.repositories.UserRepository.List(ctx, paging.Offset(), paging.PageSize)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}

	data := response.ToPaginatedData(users, paging.Page, paging.PageSize, pagingUtil.TotalPages(total, paging.PageSize), total)
	return &data, nil
}

func (d *DefaultUserManager) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := d.repositories.UserRepository.FindByID(ctx, id)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrUserNotFound)
		}
		return nil, exception.NewInternalError(err)
	}
	return user, nil
}

func (d *DefaultUserManager) Create(ctx context.Context, req request.CreateUserRequest) (*entity.User, error) {
	if err := d.checkReferences(ctx, &req.RoleID, &req.SchoolID); err != nil {
		return nil, err
	}

	if _, err := d.repositories.UserRepository.FindByEmail(ctx, req.Email); err == nil {
		return nil, exception.NewConflictError(ErrUserEmailTaken)
	} else if !queryUtil.IsNotFound(err) {
		return nil, exception.NewInternalError(err)
	}
	if _, err := d.repositories.UserRepository.FindByPhoneNumber(ctx, req.PhoneNumber); err == nil {
		return nil, exception.NewConflictError(ErrUserPhoneTaken)
	} else if !queryUtil.IsNotFound(err) {
		return nil, exception.NewInternalError(err)
	}

	hashed, err := d.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}

	now := time.Now()
	user := &entity.User{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    hashed,
		Title:       req.Title,
		Status:      userStatus.Pending,
		RoleID:      req.RoleID,
		SchoolID:    req.SchoolID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	user, err = d.repositories.UserRepository.Insert(ctx, user)
	if err != nil {
		if queryUtil.IsUniqueViolation(err) {
			return nil, exception.NewConflictError(uniqueUserMessage(err))
		}
		return nil, exception.NewInternalError(err)
	}
	return user, nil
}

// Update applies only the provided fields. An empty request still bumps
// updated_at so callers can use it as a touch.
func (d *DefaultUserManager) Update(ctx context.Context, id uuid.UUID, req request.UpdateUserRequest) (*entity.User, error) {
	user, err := d.repositories.UserRepository.FindByID(ctx, id)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrUserNotFound)
		}
		return nil, exception.NewInternalError(err)
	}

	if err := d.checkReferences(ctx, req.RoleID, req.SchoolID); err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if existing, err := d.repositories.UserRepository.FindByEmail(ctx, *req.Email); err == nil && existing.ID != user.ID {
			return nil, exception.NewConflictError(ErrUserEmailTaken)
		} else if err != nil && !queryUtil.IsNotFound(err) {
			return nil, exception.NewInternalError(err)
		}
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != user.PhoneNumber {
		if existing, err := d.repositories.UserRepository.FindByPhoneNumber(ctx, *req.PhoneNumber); err == nil && existing.ID != user.ID {
			return nil, exception.NewConflictError(ErrUserPhoneTaken)
		} else if err != nil && !queryUtil.IsNotFound(err) {
			return nil, exception.NewInternalError(err)
		}
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Password != nil {
		hashed, err := d.hasher.HashPassword(*req.Password)
		if err != nil {
			return nil, exception.NewInternalError(err)
		}
		user.Password = hashed
	}
	if req.Title != nil {
		user.Title = *req.Title
	}
	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}
	if req.SchoolID != nil {
		user.SchoolID = *req.SchoolID
	}
	user.UpdatedAt = time.Now()

	updated, err := d.repositories.UserRepository.Update(ctx, *user)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrUserNotFound)
		}
		if queryUtil.IsUniqueViolation(err) {
			return nil, exception.NewConflictError(uniqueUserMessage(err))
		}
		return nil, exception.NewInternalError(err)
	}
	return updated, nil
}

func (d *DefaultUserManager) Delete(ctx context.Context, id uuid.UUID) error {
	if err := d.repositories.UserRepository.DeleteByID(ctx, id); err != nil {
		return exception.NewInternalError(err)
	}
	return nil
}

// uniqueUserMessage names the field behind a uniqueness violation that
// raced past the pre-checks.
func uniqueUserMessage(err error) string {
	if strings.Contains(queryUtil.UniqueConstraint(err), "phone") {
		return ErrUserPhoneTaken
	}
	return ErrUserEmailTaken
}

func (d *DefaultUserManager) checkReferences(ctx context.Context, roleID, schoolID *uuid.UUID) error {
	if roleID != nil {
		exists, err := d.repositories.RoleRepository.ExistsByID(ctx, *roleID)
		if err != nil {
			return exception.NewInternalError(err)
		}
		if !exists {
			return exception.NewReferenceNotFoundError(ErrRoleUnknown)
		}
	}
	if schoolID != nil {
		if _, err := d.repositories.SchoolRepository.FindByID(ctx, *schoolID); err != nil {
			if queryUtil.IsNotFound(err) {
				return exception.NewReferenceNotFoundError(ErrSchoolUnknown)
			}
			return exception.NewInternalError(err)
		}
	}
	return nil
}
