package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"backend/school-platform/app/api/client/exception"
	"backend/school-platform/app/internal/runtime"
)

type IValidator interface {
	Register() (validator.Func, string)
}

type Validators struct {
	v          *validator.Validate
	validators []IValidator
}

func NewValidators(res runtime.Resource) *Validators {
	validators := []IValidator{
		NewNotBlankValidator(),
	}

	v := &Validators{
		v:          validator.New(),
		validators: validators,
	}

	// Setup all validators
	if err := v.Setup(); err != nil {
		panic(err)
	}

	return v
}

func (vl *Validators) Setup() error {
	for _, v := range vl.validators {
		fnc, tag := v.Register()
		if err := vl.v.RegisterValidation(tag, fnc); err != nil {
			return err
		}
	}
	return nil
}

func (vl *Validators) Validate(requestData any) error {
	if err := vl.v.Struct(requestData); err != nil {
		var validationErrs validator.ValidationErrors
		if ok := errors.As(err, &validationErrs); ok {
			e := exception.NewValidationError(describe(validationErrs))
			e.Err = err
			return e
		}
		return exception.NewInternalError(err)
	}
	return nil
}

func describe(validationErrs validator.ValidationErrors) string {
	fields := make([]string, 0, len(validationErrs))
	for _, vErr := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s failed on the '%s' tag", vErr.Field(), vErr.Tag()))
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

var _ echo.Validator = &Validators{}
