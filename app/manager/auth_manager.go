package manager

import (
	"context"
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
)

const (
	// DefaultRoleName is assigned to every self-registered account.
	DefaultRoleName = "user"

	ErrEmailAlreadyExists = "email already registered"
	ErrPhoneAlreadyExists = "phone number already registered"
)

type AuthManager interface {
	Register(ctx context.Context, request request.RegisterRequest) (*response.RegisterResponse, error)
}

type DefaultAuthManager struct {
	logger       *zap.Logger
	res          runtime.Resource
	hasher       bcrypt.Hasher
	repositories *repository.Repositories
}

func NewAuthManager(
	res runtime.Resource,
	hasher bcrypt.Hasher,
	repositories *repository.Repositories,
) AuthManager {
	return &DefaultAuthManager{
		res:          res,
		logger:       res.Logger,
		hasher:       hasher,
		repositories: repositories,
	}
}

// Register creates the first account of a school together with its school
// shell. Both rows are written in one transaction so a failure partway
// leaves no orphan school behind.
func (d *DefaultAuthManager) Register(ctx context.Context, req request.RegisterRequest) (*response.RegisterResponse, error) {
	if _, err := d.repositories.UserRepository.FindByEmail(ctx, req.Email); err == nil {
		return nil, exception.NewConflictError(ErrEmailAlreadyExists)
	} else if !queryUtil.IsNotFound(err) {
		return nil, exception.NewInternalError(err)
	}

	if _, err := d.repositories.UserRepository.FindByPhoneNumber(ctx, req.PhoneNumber); err == nil {
		return nil, exception.NewConflictError(ErrPhoneAlreadyExists)
	} else if !queryUtil.IsNotFound(err) {
		return nil, exception.NewInternalError(err)
	}

	hashed, err := d.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}

	tx, err := d.repositories.TxRepository.Begin(ctx)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}

	defaultRole, err := d.repositories.RoleRepository.WithTx(tx).FindByName(ctx, DefaultRoleName)
	if err != nil {
		_ = d.repositories.TxRepository.Rollback(tx)
		d.logger.Error("default role lookup failed", zap.String("role", DefaultRoleName), zap.Error(err))
		return nil, exception.NewInternalError(err)
	}

	now := time.Now()
	school := &entity.School{
		ID:        uuid.New(),
		Name:      req.SchoolName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	school, err = d.repositories.SchoolRepository.WithTx(tx).Insert(ctx, school)
	if err != nil {
		_ = d.repositories.TxRepository.Rollback(tx)
		return nil, exception.NewInternalError(err)
	}

	user := &entity.User{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    hashed,
		Status:      userStatus.Pending,
		RoleID:      defaultRole.ID,
		SchoolID:    school.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	user, err = d.repositories.UserRepository.WithTx(tx).Insert(ctx, user)
	if err != nil {
		_ = d.repositories.TxRepository.Rollback(tx)
		if queryUtil.IsUniqueViolation(err) {
			return nil, exception.NewConflictError(ErrEmailAlreadyExists)
		}
		return nil, exception.NewInternalError(err)
	}

	if err := d.repositories.TxRepository.Commit(tx); err != nil {
		return nil, exception.NewInternalError(err)
	}

	return &response.RegisterResponse{
		User:   *user,
		School: *school,
	}, nil
}
