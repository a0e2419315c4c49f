package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"backend/school-platform/app/database/entity"
	"backend/school-platform/app/internal/runtime"
)

type UserRepository interface {
	WithTx(tx bun.IDB) UserRepository
	List(ctx context.Context, offset, limit int) ([]entity.User, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)
	Insert(ctx context.Context, user *entity.User) (*entity.User, error)
	Update(ctx context.Context, user entity.User) (*entity.User, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type DefaultUserRepository struct {
	res runtime.Resource
	db  bun.IDB
}

func NewUserRepository(res runtime.Resource) UserRepository {
	return &DefaultUserRepository{res: res, db: res.DB}
}

func (r DefaultUserRepository) WithTx(tx bun.IDB) UserRepository {
	r.db = tx
	return &r
}

// List returns one page of users plus the total count over the same
// predicate. The two queries run in separate round trips; the total may
// drift under concurrent writes.
func (r DefaultUserRepository) List(ctx context.Context, offset, limit int) ([]entity.User, int, error) {
	var users []entity.User
	total, err := r.db.NewSelect().
		Model(&users).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r DefaultUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u := new(entity.User)
	err := r.db.NewSelect().
		Model(u).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r DefaultUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := new(entity.User)
	err := r.db.NewSelect().
		Model(u).
		Where("email = ?", email).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r DefaultUserRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	u := new(entity.User)
	err := r.db.NewSelect().
		Model(u).
		Where("phone_number = ?", phoneNumber).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r DefaultUserRepository) Insert(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := r.db.NewInsert().
		Model(user).
		Returning("*").
		Scan(ctx, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r DefaultUserRepository) Update(ctx context.Context, user entity.User) (*entity.User, error) {
	var u entity.User
	err := r.db.NewUpdate().
		Model(&user).
		WherePK().
		Where("deleted_at IS NULL").
		Returning("*").
		Scan(ctx, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r DefaultUserRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*entity.User)(nil)).
		Set("deleted_at = ?", time.Now()).
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Exec(ctx)
	return err
}
