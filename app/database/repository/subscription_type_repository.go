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

type SubscriptionTypeRepository interface {
	WithTx(tx bun.IDB) SubscriptionTypeRepository
	List(ctx context.Context, offset, limit int) ([]entity.SubscriptionType, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionType, error)
	FindByName(ctx context.Context, name string) (*entity.SubscriptionType, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Insert(ctx context.Context, subscriptionType *entity.SubscriptionType) (*entity.SubscriptionType, error)
	Update(ctx context.Context, subscriptionType entity.SubscriptionType) (*entity.SubscriptionType, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type DefaultSubscriptionTypeRepository struct {
	res runtime.Resource
	db  bun.IDB
}

func NewSubscriptionTypeRepository(res runtime.Resource) SubscriptionTypeRepository {
	return &DefaultSubscriptionTypeRepository{res: res, db: res.DB}
}

func (r DefaultSubscriptionTypeRepository) WithTx(tx bun.IDB) SubscriptionTypeRepository {
	r.db = tx
	return &r
}

func (r DefaultSubscriptionTypeRepository) List(ctx context.Context, offset, limit int) ([]entity.SubscriptionType, int, error) {
	var subscriptionTypes []entity.SubscriptionType
	total, err := r.db.NewSelect().
		Model(&subscriptionTypes).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return subscriptionTypes, total, nil
}

func (r DefaultSubscriptionTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SubscriptionType, error) {
	subscriptionType := new(entity.SubscriptionType)
	err := r.db.NewSelect().
		Model(subscriptionType).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return subscriptionType, nil
}

func (r DefaultSubscriptionTypeRepository) FindByName(ctx context.Context, name string) (*entity.SubscriptionType, error) {
	subscriptionType := new(entity.SubscriptionType)
	err := r.db.NewSelect().
		Model(subscriptionType).
		Where("name = ?", name).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return subscriptionType, nil
}

type subscriptionTypeFilter struct {
	ID uuid.UUID `mapstructure:"id"`
}

func (r DefaultSubscriptionTypeRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return queryUtil.CheckExist[entity.SubscriptionType](ctx, r.db, subscriptionTypeFilter{ID: id})
}

func (r DefaultSubscriptionTypeRepository) Insert(ctx context.Context, subscriptionType *entity.SubscriptionType) (*entity.SubscriptionType, error) {
	err := r.db.NewInsert().
		Model(subscriptionType).
		Returning("*").
		Scan(ctx, subscriptionType)
	if err != nil {
		return nil, err
	}
	return subscriptionType, nil
}

func (r DefaultSubscriptionTypeRepository) Update(ctx context.Context, subscriptionType entity.SubscriptionType) (*entity.SubscriptionType, error) {
	var out entity.SubscriptionType
	err := r.db.NewUpdate().
		Model(&subscriptionType).
		WherePK().
		Where("deleted_at IS NULL").
		Returning("*").
		Scan(ctx, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r DefaultSubscriptionTypeRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*entity.SubscriptionType)(nil)).
		Set("deleted_at = ?", time.Now()).
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Exec(ctx)
	return err
}
