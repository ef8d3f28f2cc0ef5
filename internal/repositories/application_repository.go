package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

// JobApplicationCount pairs a job with its number of applications, used by
// the employer dashboard stats.
type JobApplicationCount struct {
	JobID    string
	JobTitle string
	Count    int64
}

type ApplicationRepository interface {
	// Create inserts one application row. Concurrent submissions to the
	// same job are independent inserts, there is no job read-modify-write.
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	// FindInJob resolves an application only within the given job, so a
	// valid application id paired with the wrong job id is still NotFound.
	FindInJob(jobID, applicationID string) (*models.Application, error)
	ListByJob(jobID string) ([]models.Application, error)
	ListByEmployer(employerID string) ([]models.Application, error)
	ListByCandidate(candidateID string) ([]models.Application, error)
	UpdateStatus(applicationID string, status models.ApplicationStatus) error
	CountByJob(jobID string) (int64, error)
	CountByEmployer(employerID string) (int64, error)
	CountPerJob(employerID string) ([]JobApplicationCount, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	// Malformed ids cannot match a uuid column; screen them out before the
	// query so they resolve as not-found instead of a cast error.
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrApplicationNotFound
	}

	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindInJob(jobID, applicationID string) (*models.Application, error) {
	if _, err := uuid.Parse(applicationID); err != nil {
		return nil, ErrApplicationNotFound
	}
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, ErrApplicationNotFound
	}

	var application models.Application
	err := r.db.First(&application, "id = ? AND job_id = ?", applicationID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Candidate").Preload("Candidate.CandidateProfile").
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ListByEmployer(employerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Candidate").Preload("Candidate.CandidateProfile").Preload("Job").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Order("applications.created_at ASC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ListByCandidate(candidateID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(applicationID string, status models.ApplicationStatus) error {
	if _, err := uuid.Parse(applicationID); err != nil {
		return ErrApplicationNotFound
	}

	result := r.db.Model(&models.Application{}).
		Where("id = ?", applicationID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountByJob(jobID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByEmployer(employerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountPerJob(employerID string) ([]JobApplicationCount, error) {
	var counts []JobApplicationCount
	err := r.db.Model(&models.Job{}).
		Select("jobs.id AS job_id, jobs.title AS job_title, COUNT(applications.id) AS count").
		Joins("LEFT JOIN applications ON applications.job_id = jobs.id").
		Where("jobs.employer_id = ?", employerID).
		Group("jobs.id, jobs.title").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}
