package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces. Enough behavior to exercise
// the services without a database.

func setTestConfig(t *testing.T) {
	prev := config.AppConfig

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Upload.MaxSize = 1024
	cfg.Upload.AllowedTypes = []string{"application/pdf", "text/plain"}
	config.AppConfig = cfg

	t.Cleanup(func() { config.AppConfig = prev })
}

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*models.User
	tokens map[string]*models.RefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*models.User),
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByRole(role models.UserRole) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, user := range r.users {
		if user.Role == role {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[token]; ok {
		return t, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[token]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.tokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteUserRefreshTokens(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, token := range r.tokens {
		if token.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}

func (r *fakeUserRepo) CleanExpiredRefreshTokens() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for key, token := range r.tokens {
		if token.ExpiresAt.Before(now) {
			delete(r.tokens, key)
		}
	}
	return nil
}

type fakeProfileRepo struct {
	mu        sync.Mutex
	candidate map[string]*models.CandidateProfile // by user id
	employer  map[string]*models.EmployerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		candidate: make(map[string]*models.CandidateProfile),
		employer:  make(map[string]*models.EmployerProfile),
	}
}

func (r *fakeProfileRepo) CreateCandidateProfile(profile *models.CandidateProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.candidate[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) CreateEmployerProfile(profile *models.EmployerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.employer[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindCandidateByUserID(userID string) (*models.CandidateProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.candidate[userID]; ok {
		return p, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindEmployerByUserID(userID string) (*models.EmployerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.employer[userID]; ok {
		return p, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) UpdateCandidateProfile(profile *models.CandidateProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.candidate[profile.UserID]; !ok {
		return repositories.ErrProfileNotFound
	}
	r.candidate[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) UpdateEmployerProfile(profile *models.EmployerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employer[profile.UserID]; !ok {
		return repositories.ErrProfileNotFound
	}
	r.employer[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) SetCandidateResume(userID, resumePath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.candidate[userID]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	profile.ResumePath = resumePath
	return nil
}

type fakeJobRepo struct {
	mu    sync.Mutex
	jobs  map[string]*models.Job
	users *fakeUserRepo
}

func newFakeJobRepo(users *fakeUserRepo) *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job), users: users}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now()
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		return job, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindByIDWithEmployer(id string) (*models.Job, error) {
	job, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if r.users != nil {
		if employer, err := r.users.FindByID(job.EmployerID); err == nil {
			job.Employer = employer
		}
	}
	return job, nil
}

func (r *fakeJobRepo) FindAll() ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, job := range r.jobs {
		out = append(out, *job)
	}
	return out, nil
}

func (r *fakeJobRepo) FindByEmployer(employerID string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, job := range r.jobs {
		if job.EmployerID == employerID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) CountByEmployer(employerID string) (int64, error) {
	jobs, _ := r.FindByEmployer(employerID)
	return int64(len(jobs)), nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*models.Application
	jobs         *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[string]*models.Application),
		jobs:         jobs,
	}
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	application.CreatedAt = time.Now()
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if app, ok := r.applications[id]; ok {
		return app, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindInJob(jobID, applicationID string) (*models.Application, error) {
	app, err := r.FindByID(applicationID)
	if err != nil || app.JobID != jobID {
		return nil, repositories.ErrApplicationNotFound
	}
	return app, nil
}

func (r *fakeApplicationRepo) ListByJob(jobID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, app := range r.applications {
		if app.JobID == jobID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByEmployer(employerID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, app := range r.applications {
		if job, err := r.jobs.FindByID(app.JobID); err == nil && job.EmployerID == employerID {
			copied := *app
			copied.Job = job
			out = append(out, copied)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByCandidate(candidateID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, app := range r.applications {
		if app.CandidateID != nil && *app.CandidateID == candidateID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(applicationID string, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.applications[applicationID]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

func (r *fakeApplicationRepo) CountByJob(jobID string) (int64, error) {
	apps, _ := r.ListByJob(jobID)
	return int64(len(apps)), nil
}

func (r *fakeApplicationRepo) CountByEmployer(employerID string) (int64, error) {
	apps, _ := r.ListByEmployer(employerID)
	return int64(len(apps)), nil
}

func (r *fakeApplicationRepo) CountPerJob(employerID string) ([]repositories.JobApplicationCount, error) {
	jobs, _ := r.jobs.FindByEmployer(employerID)
	var out []repositories.JobApplicationCount
	for _, job := range jobs {
		count, _ := r.CountByJob(job.ID)
		out = append(out, repositories.JobApplicationCount{
			JobID:    job.ID,
			JobTitle: job.Title,
			Count:    count,
		})
	}
	return out, nil
}

type fakeStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	content, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = content
	return nil
}

func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/uploads/" + path, nil
}

func (s *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.files[path]
	if !ok {
		return 0, fmt.Errorf("file not found: %s", path)
	}
	return int64(len(content)), nil
}

type fakeMailer struct {
	mu       sync.Mutex
	messages []*email.Message
}

func (m *fakeMailer) Send(msg *email.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *fakeMailer) sent() []*email.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*email.Message, len(m.messages))
	copy(out, m.messages)
	return out
}
