package request

type CreateSubscriptionTypeRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

type UpdateSubscriptionTypeRequest struct {
	Name *string `json:"name" validate:"omitempty,notblank"`
}
