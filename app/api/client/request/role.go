package request

type CreateRoleRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

type UpdateRoleRequest struct {
	Name *string `json:"name" validate:"omitempty,notblank"`
}
