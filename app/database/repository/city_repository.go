package repository

import (
	"context"

	"github.com/uptrace/bun"

	"backend/school-platform/app/database/entity"
	"backend/school-platform/app/internal/runtime"
)

type CityRepository interface {
	WithTx(tx bun.IDB) CityRepository
	List(ctx context.Context) ([]entity.City, error)
	FindByCode(ctx context.Context, code string) (*entity.City, error)
	Insert(ctx context.Context, city *entity.City) (*entity.City, error)
}

type DefaultCityRepository struct {
	res runtime.Resource
	db  bun.IDB
}

func NewCityRepository(res runtime.Resource) CityRepository {
	return &DefaultCityRepository{res: res, db: res.DB}
}

func (r DefaultCityRepository) WithTx(tx bun.IDB) CityRepository {
	r.db = tx
	return &r
}

func (r DefaultCityRepository) List(ctx context.Context) ([]entity.City, error) {
	var cities []entity.City
	err := r.db.NewSelect().
		Model(&cities).
		Order("code ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r DefaultCityRepository) FindByCode(ctx context.Context, code string) (*entity.City, error) {
	city := new(entity.City)
	err := r.db.NewSelect().
		Model(city).
		Where("code = ?", code).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return city, nil
}

func (r DefaultCityRepository) Insert(ctx context.Context, city *entity.City) (*entity.City, error) {
	err := r.db.NewInsert().
		Model(city).
		Returning("*").
		Scan(ctx, city)
	if err != nil {
		return nil, err
	}
	return city, nil
}
