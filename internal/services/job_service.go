package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobService interface {
	Create(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	// Get returns the public job detail, including the posting employer's
	// contact address.
	Get(jobID string) (*dto.JobResponse, error)
	List() ([]dto.JobResponse, error)
	ListByEmployer(employerID string) ([]dto.JobResponse, error)
	Stats(employerID string) (*dto.EmployerStatsResponse, error)
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *JobServiceImpl) Create(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &models.Job{
		Company:     req.Company,
		Title:       req.Title,
		JobType:     models.JobType(req.Type),
		Location:    req.Location,
		Salary:      req.Salary,
		Description: req.Description,
		EmployerID:  employerID,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.JobToResponse(job)
	return &resp, nil
}

func (s *JobServiceImpl) Get(jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByIDWithEmployer(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.JobToResponse(job)
	if job.Employer != nil {
		resp.EmployerEmail = job.Employer.Email
	}
	return &resp, nil
}

func (s *JobServiceImpl) List() ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobsToResponses(jobs), nil
}

func (s *JobServiceImpl) ListByEmployer(employerID string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobsToResponses(jobs), nil
}

// Stats aggregates an employer's dashboard numbers: how many jobs they have
// posted, how many applications those jobs received in total, and which job
// drew the most.
func (s *JobServiceImpl) Stats(employerID string) (*dto.EmployerStatsResponse, error) {
	totalJobs, err := s.jobRepo.CountByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalApplicants, err := s.applicationRepo.CountByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	perJob, err := s.applicationRepo.CountPerJob(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.EmployerStatsResponse{
		TotalJobs:       totalJobs,
		TotalApplicants: totalApplicants,
		MostPopularJob:  "N/A",
	}
	var best int64
	for _, row := range perJob {
		if row.Count > best {
			best = row.Count
			stats.MostPopularJob = row.JobTitle
		}
	}
	return stats, nil
}

func jobsToResponses(jobs []models.Job) []dto.JobResponse {
	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, dto.JobToResponse(&jobs[i]))
	}
	return responses
}
