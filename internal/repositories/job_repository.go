package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	// FindByIDWithEmployer also loads the owning employer and profile, for
	// notification addressing and public job detail.
	FindByIDWithEmployer(id string) (*models.Job, error)
	FindAll() ([]models.Job, error)
	FindByEmployer(employerID string) ([]models.Job, error)
	CountByEmployer(employerID string) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	// A malformed id can never match; comparing it against a uuid column
	// raises a Postgres cast error rather than ErrRecordNotFound.
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrJobNotFound
	}

	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByIDWithEmployer(id string) (*models.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrJobNotFound
	}

	var job models.Job
	err := r.db.Preload("Employer").Preload("Employer.EmployerProfile").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByEmployer(employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("employer_id = ?", employerID).
		Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountByEmployer(employerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("employer_id = ?", employerID).Count(&count).Error
	return count, err
}
