package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"backend/school-platform/app/database/entity"
	"backend/school-platform/app/internal/runtime"
)

type SchoolRepository interface {
	WithTx(tx bun.IDB) SchoolRepository
	List(ctx context.Context, offset, limit int) ([]entity.School, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.School, error)
	Insert(ctx context.Context, school *entity.School) (*entity.School, error)
	Update(ctx context.Context, school entity.School) (*entity.School, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type DefaultSchoolRepository struct {
	res runtime.Resource
	db  bun.IDB
}

func NewSchoolRepository(res runtime.Resource) SchoolRepository {
	return &DefaultSchoolRepository{res: res, db: res.DB}
}

func (r DefaultSchoolRepository) WithTx(tx bun.IDB) SchoolRepository {
	r.db = tx
	return &r
}

func (r DefaultSchoolRepository) List(ctx context.Context, offset, limit int) ([]entity.School, int, error) {
	var schools []entity.School
	total, err := r.db.NewSelect().
		Model(&schools).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return schools, total, nil
}

func (r DefaultSchoolRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.School, error) {
	school := new(entity.School)
	err := r.db.NewSelect().
		Model(school).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return school, nil
}

func (r DefaultSchoolRepository) Insert(ctx context.Context, school *entity.School) (*entity.School, error) {
	err := r.db.NewInsert().
		Model(school).
		Returning("*").
		Scan(ctx, school)
	if err != nil {
		return nil, err
	}
	return school, nil
}

func (r DefaultSchoolRepository) Update(ctx context.Context, school entity.School) (*entity.School, error) {
	var out entity.School
	err := r.db.NewUpdate().
		Model(&school).
		WherePK().
		Where("deleted_at IS NULL").
		Returning("*").
		Scan(ctx, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r DefaultSchoolRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*entity.School)(nil)).
		Set("deleted_at = ?", time.Now()).
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Exec(ctx)
	return err
}
