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

func newJobServiceFixture() (*JobService, *fakeJobRepo, *fakeProfileRepo) {
	jobRepo := newFakeJobRepo()
	profileRepo := newFakeProfileRepo()
	return NewJobService(jobRepo, profileRepo), jobRepo, profileRepo
}

func employerWithProfile(t *testing.T, profileRepo *fakeProfileRepo, userID, company string) auth.Principal {
	t.Helper()
	err := profileRepo.CreateEmployerProfile(context.Background(), &models.EmployerProfile{
		UserID:      userID,
		CompanyName: company,
		Logo:        "https://cdn.example.com/" + userID + ".png",
	})
	require.NoError(t, err)
	return auth.Principal{ID: userID, Role: models.UserRoleEmployer}
}

func validCreateJobRequest() *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build and run Go services",
		Location:    "Berlin",
		JobType:     string(models.JobTypeFullTime),
		SalaryMin:   60000,
		SalaryMax:   90000,
		Skills:      []string{"go", "postgres"},
	}
}

func TestCreateJob_CopiesCompanySnapshot(t *testing.T) {
	svc, _, profileRepo := newJobServiceFixture()
	employer := employerWithProfile(t, profileRepo, "employer-1", "Acme GmbH")

	job, err := svc.CreateJob(context.Background(), employer, validCreateJobRequest())
	require.NoError(t, err)

	assert.Equal(t, "Acme GmbH", job.CompanyName)
	assert.Equal(t, "https://cdn.example.com/employer-1.png", job.CompanyLogo)
	assert.NotEmpty(t, job.CompanyProfileID)
	assert.Equal(t, "employer-1", job.EmployerID)
	assert.Equal(t, models.JobStatusActive, job.Status)
	assert.Equal(t, "USD", job.Currency)
	assert.Equal(t, []string{"go", "postgres"}, job.Skills)
}

func TestCreateJob_SnapshotSurvivesProfileEdit(t *testing.T) {
	svc, _, profileRepo := newJobServiceFixture()
	employer := employerWithProfile(t, profileRepo, "employer-1", "Acme GmbH")

	job, err := svc.CreateJob(context.Background(), employer, validCreateJobRequest())
	require.NoError(t, err)

	profile, err := profileRepo.FindEmployerProfileByUserID(context.Background(), employer.ID)
	require.NoError(t, err)
	profile.CompanyName = "Renamed Corp"
	require.NoError(t, profileRepo.UpdateEmployerProfile(context.Background(), profile))

	got, err := svc.GetJob(context.Background(), job.ID, employer)
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", got.CompanyName)
}

func TestCreateJob_Denied(t *testing.T) {
	svc, _, _ := newJobServiceFixture()

	// Job seekers cannot post jobs.
	seeker := auth.Principal{ID: "seeker-1", Role: models.UserRoleJobSeeker}
	_, err := svc.CreateJob(context.Background(), seeker, validCreateJobRequest())
	assert.True(t, apperrors.Is(err, apperrors.ErrWrongRole))

	// Employers need a completed profile first.
	bare := auth.Principal{ID: "employer-2", Role: models.UserRoleEmployer}
	_, err = svc.CreateJob(context.Background(), bare, validCreateJobRequest())
	assert.True(t, apperrors.Is(err, apperrors.ErrEmployerProfileRequired))

	// Anonymous callers are rejected outright.
	_, err = svc.CreateJob(context.Background(), auth.Principal{}, validCreateJobRequest())
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthenticated))
}

func TestCreateJob_SalaryRangeChecked(t *testing.T) {
	svc, _, profileRepo := newJobServiceFixture()
	employer := employerWithProfile(t, profileRepo, "employer-1", "Acme GmbH")

	req := validCreateJobRequest()
	req.SalaryMin = 90000
	req.SalaryMax = 60000
	_, err := svc.CreateJob(context.Background(), employer, req)
	assert.Error(t, err)
}

func TestGetJob_Visibility(t *testing.T) {
	svc, _, profileRepo := newJobServiceFixture()
	owner := employerWithProfile(t, profileRepo, "employer-1", "Acme GmbH")
	rival := employerWithProfile(t, profileRepo, "employer-2", "Rival Ltd")
	seeker := auth.Principal{ID: "seeker-1", Role: models.UserRoleJobSeeker}

	job, err := svc.CreateJob(context.Background(), owner, validCreateJobRequest())
	require.NoError(t, err)

	// Active jobs are public.
	_, err = svc.GetJob(context.Background(), job.ID, auth.Principal{})
	assert.NoError(t, err)

	closed := string(models.JobStatusClosed)
	_, err = svc.UpdateJob(context.Background(), job.ID, owner, &dto.UpdateJobRequest{Status: &closed})
	require.NoError(t, err)

	// A closed job reads as not-found to everyone but its owner.
	for _, p := range []auth.Principal{{}, seeker, rival} {
		_, err = svc.GetJob(context.Background(), job.ID, p)
		assert.True(t, apperrors.Is(err, apperrors.ErrJobNotFound))
	}
	got, err := svc.GetJob(context.Background(), job.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, got.Status)
}

func TestUpdateJob_OwnershipEnforced(t *testing.T) {
	svc, _, profileRepo := newJobServiceFixture()
	owner := employerWithProfile(t, profileRepo, "employer-1", "Acme GmbH")
	rival := employerWithProfile(t, profileRepo, "employer-2", "Rival Ltd")

	job, err := svc.CreateJob(context.Background(), owner, validCreateJobRequest())
	require.NoError(t, err)

	title := "Senior Backend Engineer"
	_, err = svc.UpdateJob(context.Background(), job.ID, rival, &dto.UpdateJobRequest{Title: &title})
	assert.True(t, apperrors.Is(err, apperrors.ErrNotOwner))

	updated, err := svc.UpdateJob(context.Background(), job.ID, owner, &dto.UpdateJobRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", updated.Title)
	// Untouched fields keep their values.
	assert.Equal(t, "Berlin", updated.Location)
}

func TestUpdateJob_MergedSalaryChecked(t *testing.T) {
	svc, _, profileRepo := newJobServiceFixture()
	owner := employerWithProfile(t, profileRepo, "employer-1", "Acme GmbH")

	job, err := svc.CreateJob(context.Background(), owner, validCreateJobRequest())
	require.NoError(t, err)

	// Patching only the max below the stored min must fail.
	badMax := 10000.0
	_, err = svc.UpdateJob(context.Background(), job.ID, owner, &dto.UpdateJobRequest{SalaryMax: &badMax})
	assert.Error(t, err)
}

func TestDeleteJob(t *testing.T) {
	svc, _, profileRepo := newJobServiceFixture()
	owner := employerWithProfile(t, profileRepo, "employer-1", "Acme GmbH")
	rival := employerWithProfile(t, profileRepo, "employer-2", "Rival Ltd")

	job, err := svc.CreateJob(context.Background(), owner, validCreateJobRequest())
	require.NoError(t, err)

	err = svc.DeleteJob(context.Background(), job.ID, rival)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotOwner))

	require.NoError(t, svc.DeleteJob(context.Background(), job.ID, owner))

	_, err = svc.GetJob(context.Background(), job.ID, owner)
	assert.True(t, apperrors.Is(err, apperrors.ErrJobNotFound))

	err = svc.DeleteJob(context.Background(), job.ID, owner)
	assert.True(t, apperrors.Is(err, apperrors.ErrJobNotFound))
}

func TestSearchJobs_OnlyActiveAndPaginated(t *testing.T) {
	svc, _, profileRepo := newJobServiceFixture()
	owner := employerWithProfile(t, profileRepo, "employer-1", "Acme GmbH")

	for i := 0; i < 12; i++ {
		_, err := svc.CreateJob(context.Background(), owner, validCreateJobRequest())
		require.NoError(t, err)
	}
	closedJob, err := svc.CreateJob(context.Background(), owner, validCreateJobRequest())
	require.NoError(t, err)
	closed := string(models.JobStatusClosed)
	_, err = svc.UpdateJob(context.Background(), closedJob.ID, owner, &dto.UpdateJobRequest{Status: &closed})
	require.NoError(t, err)

	resp, err := svc.SearchJobs(context.Background(), dto.SearchJobsRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.TotalJobs)
	assert.Equal(t, int64(2), resp.TotalPages)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Len(t, resp.Jobs, 10)

	resp, err = svc.SearchJobs(context.Background(), dto.SearchJobsRequest{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Jobs, 2)
	assert.Equal(t, 2, resp.CurrentPage)

	// Out-of-range pages return an empty list, not an error.
	resp, err = svc.SearchJobs(context.Background(), dto.SearchJobsRequest{Page: 5, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Jobs)
	assert.Equal(t, int64(12), resp.TotalJobs)
}

func TestSearchJobs_DefaultsApplied(t *testing.T) {
	svc, _, _ := newJobServiceFixture()

	resp, err := svc.SearchJobs(context.Background(), dto.SearchJobsRequest{Page: -3, PageSize: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.NotNil(t, resp.Jobs)
}

func TestSearchJobs_KeywordMatchesTitleDescriptionOrSkills(t *testing.T) {
	svc, _, profileRepo := newJobServiceFixture()
	owner := employerWithProfile(t, profileRepo, "employer-1", "Acme GmbH")

	byTitle := validCreateJobRequest()
	byTitle.Title = "React Developer"
	byTitle.Skills = []string{"javascript"}
	_, err := svc.CreateJob(context.Background(), owner, byTitle)
	require.NoError(t, err)

	byDescription := validCreateJobRequest()
	byDescription.Title = "Frontend Engineer"
	byDescription.Description = "You will work with React and TypeScript"
	byDescription.Skills = []string{"typescript"}
	_, err = svc.CreateJob(context.Background(), owner, byDescription)
	require.NoError(t, err)

	bySkill := validCreateJobRequest()
	bySkill.Title = "UI Engineer"
	bySkill.Skills = []string{"react", "css"}
	_, err = svc.CreateJob(context.Background(), owner, bySkill)
	require.NoError(t, err)

	unrelated := validCreateJobRequest()
	unrelated.Title = "Data Engineer"
	unrelated.Description = "Pipelines in Python"
	unrelated.Skills = []string{"python"}
	_, err = svc.CreateJob(context.Background(), owner, unrelated)
	require.NoError(t, err)

	// A closed posting never surfaces, keyword match or not.
	closedMatch := validCreateJobRequest()
	closedMatch.Title = "React Lead"
	closedJob, err := svc.CreateJob(context.Background(), owner, closedMatch)
	require.NoError(t, err)
	closed := string(models.JobStatusClosed)
	_, err = svc.UpdateJob(context.Background(), closedJob.ID, owner, &dto.UpdateJobRequest{Status: &closed})
	require.NoError(t, err)

	// Matching is case-insensitive across title, description and skills.
	resp, err := svc.SearchJobs(context.Background(), dto.SearchJobsRequest{Keyword: "REACT"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalJobs)

	var titles []string
	for _, job := range resp.Jobs {
		assert.Equal(t, models.JobStatusActive, job.Status)
		titles = append(titles, job.Title)
	}
	// Newest first.
	assert.Equal(t, []string{"UI Engineer", "Frontend Engineer", "React Developer"}, titles)
}

func TestSearchJobs_LocationSubstring(t *testing.T) {
	svc, _, profileRepo := newJobServiceFixture()
	owner := employerWithProfile(t, profileRepo, "employer-1", "Acme GmbH")

	berlin := validCreateJobRequest()
	berlin.Location = "Berlin"
	_, err := svc.CreateJob(context.Background(), owner, berlin)
	require.NoError(t, err)

	munich := validCreateJobRequest()
	munich.Title = "Platform Engineer"
	munich.Location = "Munich"
	_, err = svc.CreateJob(context.Background(), owner, munich)
	require.NoError(t, err)

	resp, err := svc.SearchJobs(context.Background(), dto.SearchJobsRequest{Location: "ber"})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Berlin", resp.Jobs[0].Location)

	// Keyword and location combine conjunctively.
	resp, err = svc.SearchJobs(context.Background(), dto.SearchJobsRequest{Keyword: "platform", Location: "berlin"})
	require.NoError(t, err)
	assert.Empty(t, resp.Jobs)
	assert.Equal(t, int64(0), resp.TotalJobs)
}

func TestGetEmployerJobs(t *testing.T) {
	svc, _, profileRepo := newJobServiceFixture()
	owner := employerWithProfile(t, profileRepo, "employer-1", "Acme GmbH")

	job, err := svc.CreateJob(context.Background(), owner, validCreateJobRequest())
	require.NoError(t, err)
	closed := string(models.JobStatusClosed)
	_, err = svc.UpdateJob(context.Background(), job.ID, owner, &dto.UpdateJobRequest{Status: &closed})
	require.NoError(t, err)

	// Owners see their postings regardless of status.
	jobs, err := svc.GetEmployerJobs(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	seeker := auth.Principal{ID: "seeker-1", Role: models.UserRoleJobSeeker}
	_, err = svc.GetEmployerJobs(context.Background(), seeker)
	assert.True(t, apperrors.Is(err, apperrors.ErrWrongRole))
}
