package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationFixture struct {
	svc         ApplicationService
	userRepo    *fakeUserRepo
	profileRepo *fakeProfileRepo
	jobRepo     *fakeJobRepo
	appRepo     *fakeApplicationRepo
	store       *fakeStorage
	mailer      *fakeMailer

	employer *models.User
	job      *models.Job
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	setTestConfig(t)

	f := &applicationFixture{
		userRepo:    newFakeUserRepo(),
		profileRepo: newFakeProfileRepo(),
		store:       newFakeStorage(),
		mailer:      &fakeMailer{},
	}
	f.jobRepo = newFakeJobRepo(f.userRepo)
	f.appRepo = newFakeApplicationRepo(f.jobRepo)
	f.svc = NewApplicationService(f.appRepo, f.jobRepo, f.profileRepo, f.store, f.mailer)

	f.employer = &models.User{Name: "Boss", Email: "boss@test.com", Role: models.UserRoleEmployer}
	require.NoError(t, f.userRepo.Create(f.employer))

	f.job = &models.Job{Title: "Backend Engineer", EmployerID: f.employer.ID, JobType: models.JobTypeFullTime}
	require.NoError(t, f.jobRepo.Create(f.job))

	return f
}

func pdfUpload(name, content string) *ResumeUpload {
	return &ResumeUpload{
		FileName: name,
		MimeType: "application/pdf",
		Size:     int64(len(content)),
		Reader:   strings.NewReader(content),
	}
}

func (f *applicationFixture) apply(t *testing.T, resume *ResumeUpload, candidateID *string) *dto.ApplicationResponse {
	resp, err := f.svc.Submit(context.Background(), &dto.ApplyRequest{
		JobID:       f.job.ID,
		Name:        "Alice",
		Email:       "alice@test.com",
		CoverLetter: "Hire me.",
	}, resume, candidateID)
	require.NoError(t, err)
	return resp
}

func TestSubmitWithResume(t *testing.T) {
	f := newApplicationFixture(t)

	resp := f.apply(t, pdfUpload("cv.pdf", "resume content"), nil)

	assert.Equal(t, f.job.ID, resp.JobID)
	assert.Equal(t, models.ApplicationStatusPending, resp.Status)
	require.NotNil(t, resp.Resume)
	assert.Equal(t, "cv.pdf", resp.Resume.OriginalName)
	assert.Equal(t, int64(len("resume content")), resp.Resume.Size)

	// The file landed in storage under a timestamped name.
	exists, err := f.store.Exists(context.Background(), resp.Resume.Path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.True(t, strings.HasPrefix(resp.Resume.Path, "resumes/"))
	assert.True(t, strings.HasSuffix(resp.Resume.Path, "-cv.pdf"))

	// Notifications go out asynchronously: one to the employer with the
	// resume attached, one confirmation to the applicant.
	require.Eventually(t, func() bool {
		return len(f.mailer.sent()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	var employerMsg bool
	for _, msg := range f.mailer.sent() {
		if msg.To[0] == "boss@test.com" {
			employerMsg = true
			assert.Equal(t, `New Application for "Backend Engineer": Alice`, msg.Subject)
			require.Len(t, msg.Attachments, 1)
			assert.Equal(t, "cv.pdf", msg.Attachments[0].Name)
			assert.Equal(t, "resume content", string(msg.Attachments[0].Content))
		}
	}
	assert.True(t, employerMsg)
}

func TestSubmitAnonymousRequiresResume(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Submit(context.Background(), &dto.ApplyRequest{
		JobID: f.job.ID,
		Name:  "Alice",
		Email: "alice@test.com",
	}, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrResumeRequired)
}

func TestSubmitUnknownJob(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Submit(context.Background(), &dto.ApplyRequest{
		JobID: "missing",
		Name:  "Alice",
		Email: "alice@test.com",
	}, pdfUpload("cv.pdf", "x"), nil)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestSubmitRejectsBadUploads(t *testing.T) {
	f := newApplicationFixture(t)

	// Over the configured size limit.
	big := strings.Repeat("x", 2048)
	_, err := f.svc.Submit(context.Background(), &dto.ApplyRequest{
		JobID: f.job.ID, Name: "Alice", Email: "alice@test.com",
	}, pdfUpload("big.pdf", big), nil)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)

	// Disallowed MIME type.
	_, err = f.svc.Submit(context.Background(), &dto.ApplyRequest{
		JobID: f.job.ID, Name: "Alice", Email: "alice@test.com",
	}, &ResumeUpload{
		FileName: "cv.exe",
		MimeType: "application/octet-stream",
		Size:     4,
		Reader:   strings.NewReader("0000"),
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestSubmitFallsBackToProfileResume(t *testing.T) {
	f := newApplicationFixture(t)

	candidate := &models.User{Name: "Alice", Email: "alice@test.com", Role: models.UserRoleCandidate}
	require.NoError(t, f.userRepo.Create(candidate))
	require.NoError(t, f.profileRepo.CreateCandidateProfile(&models.CandidateProfile{UserID: candidate.ID}))

	// No profile resume yet.
	_, err := f.svc.Submit(context.Background(), &dto.ApplyRequest{
		JobID: f.job.ID, Name: "Alice", Email: "alice@test.com",
	}, nil, &candidate.ID)
	assert.ErrorIs(t, err, apperrors.ErrResumeRequired)

	// With one stored, the application picks it up.
	require.NoError(t, f.store.Save(context.Background(), "resumes/123-profile.pdf", strings.NewReader("stored"), "application/pdf"))
	require.NoError(t, f.profileRepo.SetCandidateResume(candidate.ID, "resumes/123-profile.pdf"))

	resp := f.apply(t, nil, &candidate.ID)
	require.NotNil(t, resp.Resume)
	assert.Equal(t, "resumes/123-profile.pdf", resp.Resume.Path)
	assert.Equal(t, "123-profile.pdf", resp.Resume.OriginalName)
	assert.Equal(t, int64(len("stored")), resp.Resume.Size)
	require.NotNil(t, resp.CandidateID)
	assert.Equal(t, candidate.ID, *resp.CandidateID)
}

func TestListJobApplicantsOwnership(t *testing.T) {
	f := newApplicationFixture(t)

	f.apply(t, pdfUpload("cv.pdf", "x"), nil)

	applicants, err := f.svc.ListJobApplicants(f.job.ID, f.employer.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, "Alice", applicants[0].Name)

	other := &models.User{Name: "Other", Email: "other@test.com", Role: models.UserRoleEmployer}
	require.NoError(t, f.userRepo.Create(other))

	_, err = f.svc.ListJobApplicants(f.job.ID, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)

	_, err = f.svc.ListJobApplicants("missing", f.employer.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestListEmployerApplicantsSelfOnly(t *testing.T) {
	f := newApplicationFixture(t)

	f.apply(t, pdfUpload("cv.pdf", "x"), nil)

	rows, err := f.svc.ListEmployerApplicants(f.employer.ID, f.employer.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Job)
	assert.Equal(t, "Backend Engineer", rows[0].Job.Title)

	_, err = f.svc.ListEmployerApplicants(f.employer.ID, "someone-else")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestUpdateStatus(t *testing.T) {
	f := newApplicationFixture(t)

	created := f.apply(t, pdfUpload("cv.pdf", "x"), nil)

	updated, err := f.svc.UpdateStatus(f.job.ID, created.ID, f.employer.ID, models.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)

	// A decision can be reopened: accepted back to pending is legal.
	updated, err = f.svc.UpdateStatus(f.job.ID, created.ID, f.employer.ID, models.ApplicationStatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, updated.Status)

	// Anything outside the known statuses is not.
	_, err = f.svc.UpdateStatus(f.job.ID, created.ID, f.employer.ID, models.ApplicationStatus("archived"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationStatus)

	// Only the owner may decide.
	other := &models.User{Name: "Other", Email: "other@test.com", Role: models.UserRoleEmployer}
	require.NoError(t, f.userRepo.Create(other))
	_, err = f.svc.UpdateStatus(f.job.ID, created.ID, other.ID, models.ApplicationStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)

	// The application must belong to the job in the path.
	otherJob := &models.Job{Title: "Other Job", EmployerID: f.employer.ID, JobType: models.JobTypeContract}
	require.NoError(t, f.jobRepo.Create(otherJob))
	_, err = f.svc.UpdateStatus(otherJob.ID, created.ID, f.employer.ID, models.ApplicationStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}
