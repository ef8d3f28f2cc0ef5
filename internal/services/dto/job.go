package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type CreateJobRequest struct {
	Company     string `json:"company" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required,is-job-type"`
	Location    string `json:"location" validate:"required"`
	Salary      string `json:"salary,omitempty"`
	Description string `json:"description,omitempty"`
}

type JobResponse struct {
	ID          string         `json:"id"`
	Company     string         `json:"company"`
	Title       string         `json:"title"`
	Type        models.JobType `json:"type"`
	Location    string         `json:"location"`
	Salary      string         `json:"salary"`
	Description string         `json:"description"`
	EmployerID  string         `json:"employer"`
	// Filled on the public job detail so applicants can see a contact
	// address; empty elsewhere.
	EmployerEmail string    `json:"employer_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type EmployerStatsResponse struct {
	TotalJobs       int64  `json:"totalJobs"`
	TotalApplicants int64  `json:"totalApplicants"`
	MostPopularJob  string `json:"mostPopularJob"`
}

func JobToResponse(job *models.Job) JobResponse {
	return JobResponse{
		ID:          job.ID,
		Company:     job.Company,
		Title:       job.Title,
		Type:        job.JobType,
		Location:    job.Location,
		Salary:      job.Salary,
		Description: job.Description,
		EmployerID:  job.EmployerID,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}
