package manager

import (
	"backend/school-platform/app/api/client/exception"
	"backend/school-platform/app/api/client/request"
	"backend/school-platform/app/database/repository"
	"backend/school-platform/app/internal/runtime"
	"backend/school-platform/app/pkg/bcrypt"
)

type Managers struct {
	AuthManager             AuthManager
	UserManager             UserManager
	RoleManager             RoleManager
	SchoolManager           SchoolManager
	SubscriptionManager     SubscriptionManager
	SubscriptionTypeManager SubscriptionTypeManager
	ProvinceManager         ProvinceManager
	CityManager             CityManager
}

func NewManagers(
	res runtime.Resource,
	repositories *repository.Repositories,
) *Managers {
	// Create bcrypt hasher from configuration
	bcryptHasher := bcrypt.NewBcrypt(res.Config.BcryptConfig.Cost)
	hasher := &bcryptHasher

	return &Managers{
		AuthManager:             NewAuthManager(res, hasher, repositories),
		UserManager:             NewUserManager(res, hasher, repositories),
		RoleManager:             NewRoleManager(res, repositories),
		SchoolManager:           NewSchoolManager(res, repositories),
		SubscriptionManager:     NewSubscriptionManager(res, repositories),
		SubscriptionTypeManager: NewSubscriptionTypeManager(res, repositories),
		ProvinceManager:         NewProvinceManager(res, repositories),
		CityManager:             NewCityManager(res, repositories),
	}
}

// validatePaging rejects page requests that survived binding but make no
// sense as a window. Defaults for absent values are applied earlier by
// the controller, so zero or negative here is a deliberate client value.
func validatePaging(p request.PaginationRequest) error {
	if p.Page < 1 {
		return exception.NewValidationError("page must be at least 1")
	}
	if p.PageSize < 1 {
		return exception.NewValidationError("page_size must be at least 1")
	}
	return nil
}
