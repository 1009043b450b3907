package services

import (
	"context"
	"testing"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertEmployerProfile(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())
	employer := auth.Principal{ID: "employer-1", Role: models.UserRoleEmployer}

	profile, err := svc.UpsertEmployerProfile(context.Background(), employer, dto.UpsertEmployerProfileRequest{
		CompanyName: "Acme GmbH",
		Location:    "Berlin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", profile.CompanyName)
	assert.Equal(t, employer.ID, profile.UserID)

	// A second upsert updates in place instead of erroring.
	updated, err := svc.UpsertEmployerProfile(context.Background(), employer, dto.UpsertEmployerProfileRequest{
		CompanyName: "Acme AG",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme AG", updated.CompanyName)
	assert.Equal(t, profile.ID, updated.ID)

	got, err := svc.GetEmployerProfile(context.Background(), employer)
	require.NoError(t, err)
	assert.Equal(t, "Acme AG", got.CompanyName)
}

func TestUpsertEmployerProfile_Denied(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	_, err := svc.UpsertEmployerProfile(context.Background(), auth.Principal{}, dto.UpsertEmployerProfileRequest{CompanyName: "X"})
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthenticated))

	seeker := auth.Principal{ID: "seeker-1", Role: models.UserRoleJobSeeker}
	_, err = svc.UpsertEmployerProfile(context.Background(), seeker, dto.UpsertEmployerProfileRequest{CompanyName: "X"})
	assert.True(t, apperrors.Is(err, apperrors.ErrWrongRole))
}

func TestUpsertJobSeekerProfile(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())
	seeker := auth.Principal{ID: "seeker-1", Role: models.UserRoleJobSeeker}

	profile, err := svc.UpsertJobSeekerProfile(context.Background(), seeker, dto.UpsertJobSeekerProfileRequest{
		FullName: "Dana Smith",
		Skills:   []string{"go", "sql"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana Smith", profile.FullName)
	assert.JSONEq(t, `["go","sql"]`, string(profile.Skills))

	employer := auth.Principal{ID: "employer-1", Role: models.UserRoleEmployer}
	_, err = svc.UpsertJobSeekerProfile(context.Background(), employer, dto.UpsertJobSeekerProfileRequest{FullName: "X"})
	assert.True(t, apperrors.Is(err, apperrors.ErrWrongRole))
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())
	employer := auth.Principal{ID: "employer-1", Role: models.UserRoleEmployer}

	_, err := svc.GetEmployerProfile(context.Background(), employer)
	assert.True(t, apperrors.Is(err, apperrors.ErrProfileNotFound))

	seeker := auth.Principal{ID: "seeker-1", Role: models.UserRoleJobSeeker}
	_, err = svc.GetJobSeekerProfile(context.Background(), seeker)
	assert.True(t, apperrors.Is(err, apperrors.ErrProfileNotFound))
}
