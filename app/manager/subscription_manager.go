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
	ErrSubscriptionNotFound     = "subscription not found"
	ErrSubscriptionTypeUnknown  = "subscription type does not exist"
	ErrSubscriptionPriceInvalid = "price must be greater than zero"
)

type SubscriptionManager interface {
	List(ctx context.Context, paging request.PaginationRequest) (*response.PaginatedData[entity.Subscription], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)
	Create(ctx context.Context, request request.CreateSubscriptionRequest) (*entity.Subscription, error)
	Update(ctx context.Context, id uuid.UUID, request request.UpdateSubscriptionRequest) (*entity.Subscription, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DefaultSubscriptionManager struct {
	logger       *zap.Logger
	res          runtime.Resource
	repositories *repository.Repositories
}

func NewSubscriptionManager(res runtime.Resource, repositories *repository.Repositories) SubscriptionManager {
	return &DefaultSubscriptionManager{
		res:          res,
		logger:       res.Logger,
		repositories: repositories,
	}
}

func (d *DefaultSubscriptionManager) List(ctx context.Context, paging request.PaginationRequest) (*response.PaginatedData[entity.Subscription], error) {
	if err := validatePaging(paging); err != nil {
		return nil, err
	}

	subscriptions, total, err := d.repositories.SubscriptionRepository.List(ctx, paging.Offset(), paging.PageSize)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}

	data := response.ToPaginatedData(subscriptions, paging.Page, paging.PageSize, pagingUtil.TotalPages(total, paging.PageSize), total)
	return &data, nil
}

func (d *DefaultSubscriptionManager) Get(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	subscription, err := d.repositories.SubscriptionRepository.FindByID(ctx, id)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrSubscriptionNotFound)
		}
		return nil, exception.NewInternalError(err)
	}
	return subscription, nil
}

func (d *DefaultSubscriptionManager) Create(ctx context.Context, req request.CreateSubscriptionRequest) (*entity.Subscription, error) {
	if req.Price <= 0 {
		return nil, exception.NewValidationError(ErrSubscriptionPriceInvalid)
	}

	exists, err := d.repositories.SubscriptionTypeRepository.ExistsByID(ctx, req.SubscriptionTypeID)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}
	if !exists {
		return nil, exception.NewReferenceNotFoundError(ErrSubscriptionTypeUnknown)
	}

	now := time.Now()
	subscription := &entity.Subscription{
		ID:                 uuid.New(),
		Name:               req.Name,
		Price:              req.Price,
		SubscriptionTypeID: req.SubscriptionTypeID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	subscription, err = d.repositories.SubscriptionRepository.Insert(ctx, subscription)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}
	return subscription, nil
}

func (d *DefaultSubscriptionManager) Update(ctx context.Context, id uuid.UUID, req request.UpdateSubscriptionRequest) (*entity.Subscription, error) {
	subscription, err := d.repositories.SubscriptionRepository.FindByID(ctx, id)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrSubscriptionNotFound)
		}
		return nil, exception.NewInternalError(err)
	}

	if req.Name != nil {
		subscription.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, exception.NewValidationError(ErrSubscriptionPriceInvalid)
		}
		subscription.Price = *req.Price
	}
	if req.SubscriptionTypeID != nil {
		exists, err := d.repositories.SubscriptionTypeRepository.ExistsByID(ctx, *req.SubscriptionTypeID)
		if err != nil {
			return nil, exception.NewInternalError(err)
		}
		if !exists {
			return nil, exception.NewReferenceNotFoundError(ErrSubscriptionTypeUnknown)
		}
		subscription.SubscriptionTypeID = *req.SubscriptionTypeID
	}
	subscription.UpdatedAt = time.Now()

	updated, err := d.repositories.SubscriptionRepository.Update(ctx, *subscription)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrSubscriptionNotFound)
		}
		return nil, exception.NewInternalError(err)
	}
	return updated, nil
}

func (d *DefaultSubscriptionManager) Delete(ctx context.Context, id uuid.UUID) error {
	if err := d.repositories.SubscriptionRepository.DeleteByID(ctx, id); err != nil {
		return exception.NewInternalError(err)
	}
	return nil
}
