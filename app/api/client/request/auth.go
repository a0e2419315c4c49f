package request

// RegisterRequest creates the first account of a school. The school shell
// is created in the same transaction as the user.
type RegisterRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,notblank"`
	Password    string `json:"password" validate:"required,min=8"`
	SchoolName  string `json:"school_name" validate:"required,notblank"`
}
