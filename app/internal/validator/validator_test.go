package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/school-platform/app/api/client/exception"
	"backend/school-platform/app/api/client/request"
	"backend/school-platform/app/internal/runtime"
	"backend/school-platform/app/internal/validator"
)

func newValidators(t *testing.T) *validator.Validators {
	t.Helper()
	return validator.NewValidators(runtime.Resource{})
}

func TestValidateRejectsBlankRequiredFields(t *testing.T) {
	vals := newValidators(t)

	tests := []struct {
		name string
		req  any
	}{
		{
			name: "whitespace role name",
			req:  request.CreateRoleRequest{Name: "   "},
		},
		{
			name: "empty role name",
			req:  request.CreateRoleRequest{Name: ""},
		},
		{
			name: "whitespace school name",
			req:  request.CreateSchoolRequest{Name: "\t\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := vals.Validate(tt.req)
			require.Error(t, err)
			e, ok := exception.AsError(err)
			require.True(t, ok)
			assert.Equal(t, 400, e.HTTPCode)
			assert.Contains(t, e.Message, "validation failed")
		})
	}
}

func TestValidateAcceptsValidRequest(t *testing.T) {
	vals := newValidators(t)

	err := vals.Validate(request.CreateRoleRequest{Name: "admin"})
	assert.NoError(t, err)
}

func TestValidateSkipsOmittedOptionalFields(t *testing.T) {
	vals := newValidators(t)

	// nil pointers carry "omitempty" and must not trip notblank
	err := vals.Validate(request.UpdateSchoolRequest{})
	assert.NoError(t, err)

	blank := " "
	err = vals.Validate(request.UpdateSchoolRequest{Name: &blank})
	require.Error(t, err)
}

func TestValidateRegisterRequest(t *testing.T) {
	vals := newValidators(t)

	valid := request.RegisterRequest{
		Name:        "Ani",
		Email:       "ani@example.com",
		PhoneNumber: "08123456789",
		Password:    "password123",
		SchoolName:  "SDN 1",
	}
	assert.NoError(t, vals.Validate(valid))

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, vals.Validate(badEmail))

	shortPassword := valid
	shortPassword.Password = "short"
	assert.Error(t, vals.Validate(shortPassword))
}
