package request

import "github.com/google/uuid"

type CreateUserRequest struct {
	Name        string    `json:"name" validate:"required,notblank"`
	Email       string    `json:"email" validate:"required,email"`
	PhoneNumber string    `json:"phone_number" validate:"required,notblank"`
	Password    string    `json:"password" validate:"required,min=8"`
	Title       string    `json:"title"`
	RoleID      uuid.UUID `json:"role_id" validate:"required"`
	SchoolID    uuid.UUID `json:"school_id" validate:"required"`
}

type UpdateUserRequest struct {
	Name        *string    `json:"name" validate:"omitempty,notblank"`
	Email       *string    `json:"email" validate:"omitempty,email"`
	PhoneNumber *string    `json:"phone_number" validate:"omitempty,notblank"`
	Password    *string    `json:"password" validate:"omitempty,min=8"`
	Title       *string    `json:"title" validate:"omitempty,notblank"`
	RoleID      *uuid.UUID `json:"role_id"`
	SchoolID    *uuid.UUID `json:"school_id"`
}
