package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"backend/school-platform/app/database/entity"
	queryUtil "backend/school-platform/app/database/repository/query_utils"
	"backend/school-platform/app/internal/runtime"
)

type SubscriptionRepository interface {
	WithTx(tx bun.IDB) SubscriptionRepository
	List(ctx context.Context, offset, limit int) ([]entity.Subscription, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)
	FindBySubscriptionTypeID(ctx context.Context, subscriptionTypeID uuid.UUID) ([]entity.Subscription, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Insert(ctx context.Context, subscription *entity.Subscription) (*entity.Subscription, error)
	Update(ctx context.Context, subscription entity.Subscription) (*entity.Subscription, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type DefaultSubscriptionRepository struct {
	res runtime.Resource
	db  bun.IDB
}

func NewSubscriptionRepository(res runtime.Resource) SubscriptionRepository {
	return &DefaultSubscriptionRepository{res: res, db: res.DB}
}

func (r DefaultSubscriptionRepository) WithTx(tx bun.IDB) SubscriptionRepository {
	r.db = tx
	return &r
}

// Pricier plans list first so storefront ordering needs no extra sort.
func (r DefaultSubscriptionRepository) List(ctx context.Context, offset, limit int) ([]entity.Subscription, int, error) {
	var subscriptions []entity.Subscription
	total, err := r.db.NewSelect().
		Model(&subscriptions).
		Order("price DESC").
		Offset(offset).
		Limit(limit).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return subscriptions, total, nil
}

func (r DefaultSubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	subscription := new(entity.Subscription)
	err := r.db.NewSelect().
		Model(subscription).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return subscription, nil
}

func (r DefaultSubscriptionRepository) FindBySubscriptionTypeID(ctx context.Context, subscriptionTypeID uuid.UUID) ([]entity.Subscription, error) {
	var subscriptions []entity.Subscription
	err := r.db.NewSelect().
		Model(&subscriptions).
		Where("subscription_type_id = ?", subscriptionTypeID).
		Order("price DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return subscriptions, nil
}

type subscriptionFilter struct {
	ID uuid.UUID `mapstructure:"id"`
}

func (r DefaultSubscriptionRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return queryUtil.CheckExist[entity.Subscription](ctx, r.db, subscriptionFilter{ID: id})
}

func (r DefaultSubscriptionRepository) Insert(ctx context.Context, subscription *entity.Subscription) (*entity.Subscription, error) {
	err := r.db.NewInsert().
		Model(subscription).
		Returning("*").
		Scan(ctx, subscription)
	if err != nil {
		return nil, err
	}
	return subscription, nil
}

func (r DefaultSubscriptionRepository) Update(ctx context.Context, subscription entity.Subscription) (*entity.Subscription, error) {
	var out entity.Subscription
	err := r.db.NewUpdate().
		Model(&subscription).
		WherePK().
		Where("deleted_at IS NULL").
		Returning("*").
		Scan(ctx, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r DefaultSubscriptionRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*entity.Subscription)(nil)).
		Set("deleted_at = ?", time.Now()).
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Exec(ctx)
	return err
}
