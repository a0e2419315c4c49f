package request

import "github.com/google/uuid"

type CreateSubscriptionRequest struct {
	Name               string    `json:"name" validate:"required,notblank"`
	Price              int       `json:"price" validate:"required,gt=0"`
	SubscriptionTypeID uuid.UUID `json:"subscription_type_id" validate:"required"`
}

type UpdateSubscriptionRequest struct {
	Name               *string    `json:"name" validate:"omitempty,notblank"`
	Price              *int       `json:"price" validate:"omitempty,gt=0"`
	SubscriptionTypeID *uuid.UUID `json:"subscription_type_id"`
}
