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

type ProvinceManager interface {
	List(ctx context.Context) ([]response.RegionView, error)
	Sync(ctx context.Context) ([]response.RegionView, error)
}

type DefaultProvinceManager struct {
	logger       *zap.Logger
	res          runtime.Resource
	repositories *repository.Repositories
}

func NewProvinceManager(res runtime.Resource, repositories *repository.Repositories) ProvinceManager {
	return &DefaultProvinceManager{
		res:          res,
		logger:       res.Logger,
		repositories: repositories,
	}
}

func (d *DefaultProvinceManager) List(ctx context.Context) ([]response.RegionView, error) {
	provinces, err := d.repositories.ProvinceRepository.List(ctx)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}
	return response.ToProvinceViews(provinces), nil
}

// Sync pulls the upstream province dataset and inserts the rows we do not
// have yet. The fetch failing aborts the whole sync; a single row failing
// is logged and skipped so one bad record cannot block the rest.
func (d *DefaultProvinceManager) Sync(ctx context.Context) ([]response.RegionView, error) {
	regions, err := d.res.Wilayah.Provinces(ctx)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}

	for _, region := range regions {
		_, err := d.repositories.ProvinceRepository.FindByCode(ctx, region.Code)
		if err == nil {
			continue
		}
		if !queryUtil.IsNotFound(err) {
			d.logger.Warn("province lookup failed during sync",
				zap.String("code", region.Code), zap.Error(err))
			continue
		}

		now := time.Now()
		province := &entity.Province{
			Code:      region.Code,
			Name:      region.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := d.repositories.ProvinceRepository.Insert(ctx, province); err != nil {
			d.logger.Warn("province insert failed during sync",
				zap.String("code", region.Code), zap.Error(err))
		}
	}

	return d.List(ctx)
}
