package request

import "github.com/google/uuid"

// CreateSchoolRequest is bound from multipart form fields. The logo file
// part is read separately by the controller.
type CreateSchoolRequest struct {
	Name           string     `form:"name" validate:"required,notblank"`
	Address        string     `form:"address"`
	SubscriptionID *uuid.UUID `form:"subscription_id"`
	ProvinceID     *string    `form:"province_id" validate:"omitempty,notblank"`
	CityID         *string    `form:"city_id" validate:"omitempty,notblank"`
}

type UpdateSchoolRequest struct {
	Name           *string    `json:"name" validate:"omitempty,notblank"`
	Address        *string    `json:"address" validate:"omitempty,notblank"`
	SubscriptionID *uuid.UUID `json:"subscription_id"`
	ProvinceID     *string    `json:"province_id" validate:"omitempty,notblank"`
	CityID         *string    `json:"city_id" validate:"omitempty,notblank"`
}
