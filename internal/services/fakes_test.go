package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces. They mirror the storage
// semantics the services rely on: sentinel errors, the application unique
// index and newest-first ordering.

type fakeJobRepo struct {
	jobs map[string]*models.Job
	seq  int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (f *fakeJobRepo) Create(_ context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	// Monotonic timestamps keep newest-first ordering deterministic.
	f.seq++
	job.CreatedAt = time.Unix(int64(f.seq), 0)
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobRepo) FindByID(_ context.Context, id string) (*models.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) Update(_ context.Context, job *models.Job) error {
	if _, ok := f.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) FindByEmployer(_ context.Context, employerID string) ([]models.Job, error) {
	var out []models.Job
	for _, job := range f.jobs {
		if job.EmployerID == employerID {
			out = append(out, *job)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeJobRepo) FindByIDs(_ context.Context, ids []string) ([]models.Job, error) {
	var out []models.Job
	for _, id := range ids {
		if job, ok := f.jobs[id]; ok {
			out = append(out, *job)
		}
	}
	return out, nil
}

// jobMatchesKeyword mirrors the ILIKE predicate: a case-insensitive
// substring match over title, description or the skills JSON text.
func jobMatchesKeyword(job *models.Job, keyword string) bool {
	kw := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(job.Title), kw) ||
		strings.Contains(strings.ToLower(job.Description), kw) ||
		strings.Contains(strings.ToLower(string(job.Skills)), kw)
}

func (f *fakeJobRepo) Search(_ context.Context, criteria repositories.JobSearchCriteria) ([]models.Job, int64, error) {
	var matched []models.Job
	for _, job := range f.jobs {
		if job.Status != models.JobStatusActive {
			continue
		}
		if criteria.Keyword != "" && !jobMatchesKeyword(job, criteria.Keyword) {
			continue
		}
		if criteria.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(criteria.Location)) {
			continue
		}
		if criteria.JobType != "" && criteria.JobType != "all" && string(job.JobType) != criteria.JobType {
			continue
		}
		matched = append(matched, *job)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	start := (criteria.Page - 1) * criteria.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + criteria.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeJobRepo) ExpireOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for _, job := range f.jobs {
		if job.Status == models.JobStatusActive && job.CreatedAt.Before(cutoff) {
			job.Status = models.JobStatusExpired
			n++
		}
	}
	return n, nil
}

type applicationKey struct {
	jobID       string
	applicantID string
}

type fakeApplicationRepo struct {
	applications map[string]*models.Application
	byPair       map[applicationKey]string
	seq          int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[string]*models.Application),
		byPair:       make(map[applicationKey]string),
	}
}

func (f *fakeApplicationRepo) Create(_ context.Context, application *models.Application) error {
	key := applicationKey{application.JobID, application.ApplicantID}
	if _, dup := f.byPair[key]; dup {
		return repositories.ErrApplicationAlreadyExists
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	f.seq++
	application.AppliedAt = time.Unix(int64(f.seq), 0)
	copied := *application
	f.applications[application.ID] = &copied
	f.byPair[key] = application.ID
	return nil
}

func (f *fakeApplicationRepo) FindByID(_ context.Context, id string) (*models.Application, error) {
	application, ok := f.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *application
	return &copied, nil
}

func (f *fakeApplicationRepo) ExistsForJobAndApplicant(_ context.Context, jobID, applicantID string) (bool, error) {
	_, ok := f.byPair[applicationKey{jobID, applicantID}]
	return ok, nil
}

func (f *fakeApplicationRepo) FindByApplicant(_ context.Context, applicantID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range f.applications {
		if a.ApplicantID == applicantID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

func (f *fakeApplicationRepo) FindByJobIDs(_ context.Context, jobIDs []string) ([]models.Application, error) {
	idSet := make(map[string]bool, len(jobIDs))
	for _, id := range jobIDs {
		idSet[id] = true
	}
	var out []models.Application
	for _, a := range f.applications {
		if idSet[a.JobID] {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) error {
	application, ok := f.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	application.Status = status
	return nil
}

type fakeUserRepo struct {
	users         map[string]*models.User
	refreshTokens map[string]*models.RefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:         make(map[string]*models.User),
		refreshTokens: make(map[string]*models.RefreshToken),
	}
}

func (f *fakeUserRepo) add(user models.User) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users[user.ID] = &user
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByIDs(_ context.Context, ids []string) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) CreateRefreshToken(_ context.Context, token *models.RefreshToken) error {
	copied := *token
	f.refreshTokens[token.Token] = &copied
	return nil
}

func (f *fakeUserRepo) FindRefreshToken(_ context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := f.refreshTokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	copied := *rt
	return &copied, nil
}

func (f *fakeUserRepo) DeleteRefreshToken(_ context.Context, token string) error {
	delete(f.refreshTokens, token)
	return nil
}

func (f *fakeUserRepo) DeleteUserRefreshTokens(_ context.Context, userID string) error {
	for token, rt := range f.refreshTokens {
		if rt.UserID == userID {
			delete(f.refreshTokens, token)
		}
	}
	return nil
}

func (f *fakeUserRepo) CleanExpiredRefreshTokens(_ context.Context) error {
	for token, rt := range f.refreshTokens {
		if rt.ExpiresAt.Before(time.Now()) {
			delete(f.refreshTokens, token)
		}
	}
	return nil
}

type fakeProfileRepo struct {
	employerProfiles map[string]*models.EmployerProfile
	seekerProfiles   map[string]*models.JobSeekerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		employerProfiles: make(map[string]*models.EmployerProfile),
		seekerProfiles:   make(map[string]*models.JobSeekerProfile),
	}
}

func (f *fakeProfileRepo) CreateEmployerProfile(_ context.Context, profile *models.EmployerProfile) error {
	if _, dup := f.employerProfiles[profile.UserID]; dup {
		return repositories.ErrProfileAlreadyExists
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	copied := *profile
	f.employerProfiles[profile.UserID] = &copied
	return nil
}

func (f *fakeProfileRepo) FindEmployerProfileByUserID(_ context.Context, userID string) (*models.EmployerProfile, error) {
	profile, ok := f.employerProfiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeProfileRepo) UpdateEmployerProfile(_ context.Context, profile *models.EmployerProfile) error {
	copied := *profile
	f.employerProfiles[profile.UserID] = &copied
	return nil
}

func (f *fakeProfileRepo) CreateJobSeekerProfile(_ context.Context, profile *models.JobSeekerProfile) error {
	if _, dup := f.seekerProfiles[profile.UserID]; dup {
		return repositories.ErrProfileAlreadyExists
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	copied := *profile
	f.seekerProfiles[profile.UserID] = &copied
	return nil
}

func (f *fakeProfileRepo) FindJobSeekerProfileByUserID(_ context.Context, userID string) (*models.JobSeekerProfile, error) {
	profile, ok := f.seekerProfiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeProfileRepo) FindJobSeekerProfilesByUserIDs(_ context.Context, userIDs []string) ([]models.JobSeekerProfile, error) {
	var out []models.JobSeekerProfile
	for _, id := range userIDs {
		if profile, ok := f.seekerProfiles[id]; ok {
			out = append(out, *profile)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) UpdateJobSeekerProfile(_ context.Context, profile *models.JobSeekerProfile) error {
	copied := *profile
	f.seekerProfiles[profile.UserID] = &copied
	return nil
}

// fakeEmailSender records recipients and signals on done so tests can wait
// out the notification goroutine before touching shared state again.
type fakeEmailSender struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
}

func newFakeEmailSender() *fakeEmailSender {
	return &fakeEmailSender{done: make(chan struct{}, 16)}
}

func (f *fakeEmailSender) Send(to, subject, body string) error {
	f.mu.Lock()
	f.sent = append(f.sent, to)
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

func (f *fakeEmailSender) waitForSend(t *testing.T) {
	t.Helper()
	select {
	case <-f.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification email")
	}
}

func (f *fakeEmailSender) recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}
