package manager

import (
	"context"
	"time"

	"go.uber.org/zap"

	"backend/school-platform/app/api/client/exception"
	"backend/school-platform/app/api/client/response"
	"backend/school-platform/app/database/entity"
	"backend/school-platform/app/database/repository"
	queryUtil "backend/school-platform/app/database/repository/query_utils"
	"backend/school-platform/app/internal/runtime"
)

type CityManager interface {
	List(ctx context.Context) ([]response.RegionView, error)
	Sync(ctx context.Context) ([]response.RegionView, error)
}

type DefaultCityManager struct {
	logger       *zap.Logger
	res          runtime.Resource
	repositories *repository.Repositories
}

func NewCityManager(res runtime.Resource, repositories *repository.Repositories) CityManager {
	return &DefaultCityManager{
		res:          res,
		logger:       res.Logger,
		repositories: repositories,
	}
}

func (d *DefaultCityManager) List(ctx context.Context) ([]response.RegionView, error) {
	cities, err := d.repositories.CityRepository.List(ctx)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}
	return response.ToCityViews(cities), nil
}

// Sync walks every province already in the table and pulls its regencies
// from upstream. Reading the province table failing aborts the sync; a
// failing province or row is logged and skipped.
func (d *DefaultCityManager) Sync(ctx context.Context) ([]response.RegionView, error) {
	provinces, err := d.repositories.ProvinceRepository.List(ctx)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}

	for _, province := range provinces {
		regions, err := d.res.Wilayah.Regencies(ctx, province.Code)
		if err != nil {
			d.logger.Warn("regency fetch failed during sync",
				zap.String("province", province.Code), zap.Error(err))
			continue
		}

		for _, region := range regions {
			_, err := d.repositories.CityRepository.FindByCode(ctx, region.Code)
			if err == nil {
				continue
			}
			if !queryUtil.IsNotFound(err) {
				d.logger.Warn("city lookup failed during sync",
					zap.String("code", region.Code), zap.Error(err))
				continue
			}

			now := time.Now()
			city := &entity.City{
				Code:       region.Code,
				Name:       region.Name,
				ProvinceID: province.Code,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if _, err := d.repositories.CityRepository.Insert(ctx, city); err != nil {
				d.logger.Warn("city insert failed during sync",
					zap.String("code", region.Code), zap.Error(err))
			}
		}
	}

	return d.List(ctx)
}
