package repository

import (
	"context"

	"github.com/uptrace/bun"

	"backend/school-platform/app/database/entity"
	"backend/school-platform/app/internal/runtime"
)

// Provinces are reference data keyed by the official area code. They are
// never updated or deleted, only inserted when the upstream dataset grows.
type ProvinceRepository interface {
	WithTx(tx bun.IDB) ProvinceRepository
	List(ctx context.Context) ([]entity.Province, error)
	FindByCode(ctx context.Context, code string) (*entity.Province, error)
	Insert(ctx context.Context, province *entity.Province) (*entity.Province, error)
}

type DefaultProvinceRepository struct {
	res runtime.Resource
	db  bun.IDB
}

func NewProvinceRepository(res runtime.Resource) ProvinceRepository {
	return &DefaultProvinceRepository{res: res, db: res.DB}
}

func (r DefaultProvinceRepository) WithTx(tx bun.IDB) ProvinceRepository {
	r.db = tx
	return &r
}

func (r DefaultProvinceRepository) List(ctx context.Context) ([]entity.Province, error) {
	var provinces []entity.Province
	err := r.db.NewSelect().
		Model(&provinces).
		Order("code ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return provinces, nil
}

func (r DefaultProvinceRepository) FindByCode(ctx context.Context, code string) (*entity.Province, error) {
	province := new(entity.Province)
	err := r.db.NewSelect().
		Model(province).
		Where("code = ?", code).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return province, nil
}

func (r DefaultProvinceRepository) Insert(ctx context.Context, province *entity.Province) (*entity.Province, error) {
	err := r.db.NewInsert().
		Model(province).
		Returning("*").
		Scan(ctx, province)
	if err != nil {
		return nil, err
	}
	return province, nil
}
