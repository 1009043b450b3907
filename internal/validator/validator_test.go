package validator

import (
	"testing"

	"jobportal_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enumPayload struct {
	Role   models.UserRole          `json:"role" validate:"omitempty,is-user-role"`
	Type   models.JobType           `json:"jobType" validate:"omitempty,is-job-type"`
	Status models.ApplicationStatus `json:"status" validate:"omitempty,is-application-status"`
}

func TestValidate_EnumTags(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(enumPayload{
		Role:   models.UserRoleEmployer,
		Type:   models.JobTypeFullTime,
		Status: models.ApplicationStatusShortlisted,
	}))

	// Empty values pass; 'required' is a separate concern.
	assert.NoError(t, v.Validate(enumPayload{}))

	err := v.Validate(enumPayload{Role: "superuser"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "role")

	err = v.Validate(enumPayload{Type: "gig"})
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "jobType")

	err = v.Validate(enumPayload{Status: "archived"})
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "status")
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	payload := struct {
		CompanyName string `json:"company_name" validate:"required"`
	}{}

	err := v.Validate(payload)
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "company_name")
	assert.Equal(t, "This field is required", vErr.Errors["company_name"])
}

func TestValidate_AdminRoleRejectedOnRegistration(t *testing.T) {
	v := New()

	err := v.Validate(enumPayload{Role: models.UserRoleAdmin})
	require.Error(t, err)
}
