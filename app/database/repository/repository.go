package repository

import (
	"backend/school-platform/app/internal/runtime"
)

type Repositories struct {
	UserRepository             UserRepository
	RoleRepository             RoleRepository
	SchoolRepository           SchoolRepository
	SubscriptionRepository     SubscriptionRepository
	SubscriptionTypeRepository SubscriptionTypeRepository
	ProvinceRepository         ProvinceRepository
	CityRepository             CityRepository
	TxRepository               TxRepository
}

func NewRepositories(res runtime.Resource) *Repositories {
	return &Repositories{
		UserRepository:             NewUserRepository(res),
		RoleRepository:             NewRoleRepository(res),
		SchoolRepository:           NewSchoolRepository(res),
		SubscriptionRepository:     NewSubscriptionRepository(res),
		SubscriptionTypeRepository: NewSubscriptionTypeRepository(res),
		ProvinceRepository:         NewProvinceRepository(res),
		CityRepository:             NewCityRepository(res),
		TxRepository:               NewTxRepository(res),
	}
}
