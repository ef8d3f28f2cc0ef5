package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// ApplyRequest is the multipart form a candidate submits. The resume file
// itself travels outside this struct.
type ApplyRequest struct {
	JobID       string `form:"jobId" json:"jobId" validate:"required"`
	Name        string `form:"name" json:"name" validate:"required"`
	Email       string `form:"email" json:"email" validate:"required,email"`
	CoverLetter string `form:"coverLetter" json:"coverLetter,omitempty"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

type ResumeDTO struct {
	OriginalName string `json:"originalname"`
	MimeType     string `json:"mimetype"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
}

type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	CandidateID *string                  `json:"candidate_id,omitempty"`
	Name        string                   `json:"name"`
	Email       string                   `json:"email"`
	CoverLetter string                   `json:"cover_letter,omitempty"`
	Resume      *ResumeDTO               `json:"resume,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedAt   time.Time                `json:"applied_at"`
}

// CandidatePublicDTO is the subset of candidate fields an employer sees when
// reviewing applicants.
type CandidatePublicDTO struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills,omitempty"`
	Resume string   `json:"resume,omitempty"`
}

type JobRefDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ApplicantResponse is one row of an employer's review list: the application
// plus the resolved candidate (nil when the reference does not resolve) and,
// on cross-job listings, the parent job.
type ApplicantResponse struct {
	ApplicationResponse
	Candidate *CandidatePublicDTO `json:"candidate"`
	Job       *JobRefDTO          `json:"job,omitempty"`
}

func ApplicationToResponse(app *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		CandidateID: app.CandidateID,
		Name:        app.Name,
		Email:       app.Email,
		CoverLetter: app.CoverLetter,
		Status:      app.Status,
		AppliedAt:   app.CreatedAt,
	}
	if app.ResumePath != "" {
		resp.Resume = &ResumeDTO{
			OriginalName: app.ResumeName,
			MimeType:     app.ResumeMime,
			Size:         app.ResumeSize,
			Path:         app.ResumePath,
		}
	}
	return resp
}
