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

type RoleRepository interface {
	WithTx(tx bun.IDB) RoleRepository
	List(ctx context.Context, offset, limit int) ([]entity.Role, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error)
	FindByName(ctx context.Context, name string) (*entity.Role, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Insert(ctx context.Context, role *entity.Role) (*entity.Role, error)
	Update(ctx context.Context, role entity.Role) (*entity.Role, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type DefaultRoleRepository struct {
	res runtime.Resource
	db  bun.IDB
}

func NewRoleRepository(res runtime.Resource) RoleRepository {
	return &DefaultRoleRepository{res: res, db: res.DB}
}

func (r DefaultRoleRepository) WithTx(tx bun.IDB) RoleRepository {
	r.db = tx
	return &r
}

func (r DefaultRoleRepository) List(ctx context.Context, offset, limit int) ([]entity.Role, int, error) {
	var roles []entity.Role
	total, err := r.db.NewSelect().
		Model(&roles).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return roles, total, nil
}

func (r DefaultRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	role := new(entity.Role)
	err := r.db.NewSelect().
		Model(role).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (r DefaultRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	role := new(entity.Role)
	err := r.db.NewSelect().
		Model(role).
		Where("name = ?", name).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return role, nil
}

type roleFilter struct {
	ID uuid.UUID `mapstructure:"id"`
}

func (r DefaultRoleRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return queryUtil.CheckExist[entity.Role](ctx, r.db, roleFilter{ID: id})
}

func (r DefaultRoleRepository) Insert(ctx context.Context, role *entity.Role) (*entity.Role, error) {
	err := r.db.NewInsert().
		Model(role).
		Returning("*").
		Scan(ctx, role)
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (r DefaultRoleRepository) Update(ctx context.Context, role entity.Role) (*entity.Role, error) {
	var out entity.Role
	err := r.db.NewUpdate().
		Model(&role).
		WherePK().
		Where("deleted_at IS NULL").
		Returning("*").
		Scan(ctx, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r DefaultRoleRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*entity.Role)(nil)).
		Set("deleted_at = ?", time.Now()).
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Exec(ctx)
	return err
}
