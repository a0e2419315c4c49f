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
	ErrSubscriptionTypeNotFound      = "subscription type not found"
	ErrSubscriptionTypeAlreadyExists = "subscription type name already exists"
)

type SubscriptionTypeManager interface {
	List(ctx context.Context, paging request.PaginationRequest) (*response.PaginatedData[response.SubscriptionTypeView], error)
	Get(ctx context.Context, id uuid.UUID) (*response.SubscriptionTypeView, error)
	Create(ctx context.Context, request request.CreateSubscriptionTypeRequest) (*entity.SubscriptionType, error)
	Update(ctx context.Context, id uuid.UUID, request request.UpdateSubscriptionTypeRequest) (*entity.SubscriptionType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DefaultSubscriptionTypeManager struct {
	logger       *zap.Logger
	res          runtime.Resource
	repositories *repository.Repositories
}

func NewSubscriptionTypeManager(res runtime.Resource, repositories *repository.Repositories) SubscriptionTypeManager {
	return &DefaultSubscriptionTypeManager{
		res:          res,
		logger:       res.Logger,
		repositories: repositories,
	}
}

// List returns each type joined with the plans priced under it so clients
// can render the full catalog in one request.
func (d *DefaultSubscriptionTypeManager) List(ctx context.Context, paging request.PaginationRequest) (*response.PaginatedData[response.SubscriptionTypeView], error) {
	if err := validatePaging(paging); err != nil {
		return nil, err
	}

	subscriptionTypes, total, err := d.repositories.SubscriptionTypeRepository.List(ctx, paging.Offset(), paging.PageSize)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}

	views := make([]response.SubscriptionTypeView, 0, len(subscriptionTypes))
	for _, subscriptionType := range subscriptionTypes {
		subscriptions, err := d.repositories.SubscriptionRepository.FindBySubscriptionTypeID(ctx, subscriptionType.ID)
		if err != nil {
			// a broken join degrades to an empty plan list for that type
			d.logger.Warn("subscription join failed",
				zap.String("subscription_type_id", subscriptionType.ID.String()), zap.Error(err))
			subscriptions = nil
		}
		views = append(views, response.ToSubscriptionTypeView(subscriptionType, subscriptions))
	}

	data := response.ToPaginatedData(views, paging.Page, paging.PageSize, pagingUtil.TotalPages(total, paging.PageSize), total)
	return &data, nil
}

func (d *DefaultSubscriptionTypeManager) Get(ctx context.Context, id uuid.UUID) (*response.SubscriptionTypeView, error) {
	subscriptionType, err := d.repositories.SubscriptionTypeRepository.FindByID(ctx, id)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrSubscriptionTypeNotFound)
		}
		return nil, exception.NewInternalError(err)
	}

	subscriptions, err := d.repositories.SubscriptionRepository.FindBySubscriptionTypeID(ctx, subscriptionType.ID)
	if err != nil {
		d.logger.Warn("subscription join failed",
			zap.String("subscription_type_id", subscriptionType.ID.String()), zap.Error(err))
		subscriptions = nil
	}

	view := response.ToSubscriptionTypeView(*subscriptionType, subscriptions)
	return &view, nil
}

func (d *DefaultSubscriptionTypeManager) Create(ctx context.Context, req request.CreateSubscriptionTypeRequest) (*entity.SubscriptionType, error) {
	now := time.Now()
	subscriptionType := &entity.SubscriptionType{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	subscriptionType, err := d.repositories.SubscriptionTypeRepository.Insert(ctx, subscriptionType)
	if err != nil {
		if queryUtil.IsUniqueViolation(err) {
			return nil, exception.NewConflictError(ErrSubscriptionTypeAlreadyExists)
		}
		return nil, exception.NewInternalError(err)
	}
	return subscriptionType, nil
}

func (d *DefaultSubscriptionTypeManager) Update(ctx context.Context, id uuid.UUID, req request.UpdateSubscriptionTypeRequest) (*entity.SubscriptionType, error) {
	subscriptionType, err := d.repositories.SubscriptionTypeRepository.FindByID(ctx, id)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrSubscriptionTypeNotFound)
		}
		return nil, exception.NewInternalError(err)
	}

	if req.Name != nil {
		subscriptionType.Name = *req.Name
	}
	subscriptionType.UpdatedAt = time.Now()

	updated, err := d.repositories.SubscriptionTypeRepository.Update(ctx, *subscriptionType)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrSubscriptionTypeNotFound)
		}
		if queryUtil.IsUniqueViolation(err) {
			return nil, exception.NewConflictError(ErrSubscriptionTypeAlreadyExists)
		}
		return nil, exception.NewInternalError(err)
	}
	return updated, nil
}

func (d *DefaultSubscriptionTypeManager) Delete(ctx context.Context, id uuid.UUID) error {
	if err := d.repositories.SubscriptionTypeRepository.DeleteByID(ctx, id); err != nil {
		return exception.NewInternalError(err)
	}
	return nil
}
