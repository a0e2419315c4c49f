package manager

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
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
	ErrSchoolNotFound        = "school not found"
	ErrSubscriptionUnknown   = "subscription does not exist"
	ErrProvinceUnknown       = "province does not exist"
	ErrCityUnknown           = "city does not exist"
	ErrSchoolLogoUnreadable  = "logo file could not be read"
	ErrSchoolLogoUploadError = "logo upload failed"

	logoKeyPrefix = "school_logos"
)

type SchoolManager interface {
	List(ctx context.Context, paging request.PaginationRequest) (*response.PaginatedData[entity.School], error)
	Get(ctx context.Context, id uuid.UUID) (*entity.School, error)
	Create(ctx context.Context, request request.CreateSchoolRequest, logo *multipart.FileHeader) (*entity.School, error)
	Update(ctx context.Context, id uuid.UUID, request request.UpdateSchoolRequest) (*entity.School, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DefaultSchoolManager struct {
	logger       *zap.Logger
	res          runtime.Resource
	repositories *repository.Repositories
}

func NewSchoolManager(res runtime.Resource, repositories *repository.Repositories) SchoolManager {
	return &DefaultSchoolManager{
		res:          res,
		logger:       res.Logger,
		repositories: repositories,
	}
}

func (d *DefaultSchoolManager) List(ctx context.Context, paging request.PaginationRequest) (*response.PaginatedData[entity.School], error) {
	if err := validatePaging(paging); err != nil {
		return nil, err
	}

	schools, total, err := d.repositories.SchoolRepository.List(ctx, paging.Offset(), paging.PageSize)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}

	data := response.ToPaginatedData(schools, paging.Page, paging.PageSize, pagingUtil.TotalPages(total, paging.PageSize), total)
	return &data, nil
}

func (d *DefaultSchoolManager) Get(ctx context.Context, id uuid.UUID) (*entity.School, error) {
	school, err := d.repositories.SchoolRepository.FindByID(ctx, id)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrSchoolNotFound)
		}
		return nil, exception.NewInternalError(err)
	}
	return school, nil
}

// Create validates every referenced record before touching storage, then
// uploads the logo before the insert. A failed insert leaves an orphan
// object behind, which is cheaper than a school row pointing at a logo
// that never landed.
func (d *DefaultSchoolManager) Create(ctx context.Context, req request.CreateSchoolRequest, logo *multipart.FileHeader) (*entity.School, error) {
	if err := d.checkReferences(ctx, req.SubscriptionID, req.ProvinceID, req.CityID); err != nil {
		return nil, err
	}

	logoPath := ""
	if logo != nil {
		url, err := d.uploadLogo(ctx, logo)
		if err != nil {
			return nil, err
		}
		logoPath = url
	}

	now := time.Now()
	school := &entity.School{
		ID:             uuid.New(),
		Name:           req.Name,
		Address:        req.Address,
		LogoPath:       logoPath,
		SubscriptionID: req.SubscriptionID,
		ProvinceID:     req.ProvinceID,
		CityID:         req.CityID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	school, err := d.repositories.SchoolRepository.Insert(ctx, school)
	if err != nil {
		return nil, exception.NewInternalError(err)
	}
	return school, nil
}

func (d *DefaultSchoolManager) Update(ctx context.Context, id uuid.UUID, req request.UpdateSchoolRequest) (*entity.School, error) {
	school, err := d.repositories.SchoolRepository.FindByID(ctx, id)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrSchoolNotFound)
		}
		return nil, exception.NewInternalError(err)
	}

	if err := d.checkReferences(ctx, req.SubscriptionID, req.ProvinceID, req.CityID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		school.Name = *req.Name
	}
	if req.Address != nil {
		school.Address = *req.Address
	}
	if req.SubscriptionID != nil {
		school.SubscriptionID = req.SubscriptionID
	}
	if req.ProvinceID != nil {
		school.ProvinceID = req.ProvinceID
	}
	if req.CityID != nil {
		school.CityID = req.CityID
	}
	school.UpdatedAt = time.Now()

	updated, err := d.repositories.SchoolRepository.Update(ctx, *school)
	if err != nil {
		if queryUtil.IsNotFound(err) {
			return nil, exception.NewNotFoundError(ErrSchoolNotFound)
		}
		return nil, exception.NewInternalError(err)
	}
	return updated, nil
}

func (d *DefaultSchoolManager) Delete(ctx context.Context, id uuid.UUID) error {
	if err := d.repositories.SchoolRepository.DeleteByID(ctx, id); err != nil {
		return exception.NewInternalError(err)
	}
	return nil
}

func (d *DefaultSchoolManager) checkReferences(ctx context.Context, subscriptionID *uuid.UUID, provinceID, cityID *string) error {
	if subscriptionID != nil {
		exists, err := d.repositories.SubscriptionRepository.ExistsByID(ctx, *subscriptionID)
		if err != nil {
			return exception.NewInternalError(err)
		}
		if !exists {
			return exception.NewReferenceNotFoundError(ErrSubscriptionUnknown)
		}
	}
	if provinceID != nil {
		if _, err := d.repositories.ProvinceRepository.FindByCode(ctx, *provinceID); err != nil {
			if queryUtil.IsNotFound(err) {
				return exception.NewReferenceNotFoundError(ErrProvinceUnknown)
			}
			return exception.NewInternalError(err)
		}
	}
	if cityID != nil {
		if _, err := d.repositories.CityRepository.FindByCode(ctx, *cityID); err != nil {
			if queryUtil.IsNotFound(err) {
				return exception.NewReferenceNotFoundError(ErrCityUnknown)
			}
			return exception.NewInternalError(err)
		}
	}
	return nil
}

func (d *DefaultSchoolManager) uploadLogo(ctx context.Context, logo *multipart.FileHeader) (string, error) {
	file, err := logo.Open()
	if err != nil {
		e := exception.NewValidationError(ErrSchoolLogoUnreadable)
		e.Err = err
		return "", e
	}
	defer file.Close()

	contentType := logo.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("%s/%s%s", logoKeyPrefix, uuid.New().String(), filepath.Ext(logo.Filename))
	url, err := d.res.Storage.Upload(ctx, key, file, contentType)
	if err != nil {
		d.logger.Error("logo upload failed", zap.String("key", key), zap.Error(err))
		return "", exception.NewInternalError(err)
	}
	return url, nil
}
