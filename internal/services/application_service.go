package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"
)

// ResumeUpload carries an uploaded resume from the handler into the service.
type ResumeUpload struct {
	FileName string
	MimeType string
	Size     int64
	Reader   io.Reader
}

type ApplicationService interface {
	// Submit files an application for a job. When resume is nil and the
	// submitter is an authenticated candidate, the resume stored on their
	// profile is used instead; anonymous submissions must attach one.
	Submit(ctx context.Context, req *dto.ApplyRequest, resume *ResumeUpload, candidateID *string) (*dto.ApplicationResponse, error)
	ListJobApplicants(jobID, employerID string) ([]dto.ApplicantResponse, error)
	// ListEmployerApplicants returns applications across all of an
	// employer's jobs. Employers may only list their own.
	ListEmployerApplicants(employerID, requesterID string) ([]dto.ApplicantResponse, error)
	ListCandidateApplications(candidateID string) ([]dto.ApplicationResponse, error)
	UpdateStatus(jobID, applicationID, employerID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	profileRepo     repositories.ProfileRepository
	store           storage.Storage
	mailer          email.Mailer
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	store storage.Storage,
	mailer email.Mailer,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		store:           store,
		mailer:          mailer,
	}
}

func (s *ApplicationServiceImpl) Submit(ctx context.Context, req *dto.ApplyRequest, resume *ResumeUpload, candidateID *string) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByIDWithEmployer(req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		JobID:       job.ID,
		CandidateID: candidateID,
		Name:        req.Name,
		Email:       req.Email,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	var attachment *email.Attachment
	if resume != nil {
		content, err := s.storeResume(ctx, resume, application)
		if err != nil {
			return nil, err
		}
		attachment = &email.Attachment{
			Name:        application.ResumeName,
			Content:     content,
			ContentType: application.ResumeMime,
		}
	} else {
		if candidateID == nil {
			return nil, apperrors.ErrResumeRequired
		}
		if err := s.attachProfileResume(ctx, *candidateID, application); err != nil {
			return nil, err
		}
		// Best-effort: attach the stored resume to the employer email too.
		if reader, err := s.store.Get(ctx, application.ResumePath); err == nil {
			if content, err := io.ReadAll(reader); err == nil {
				attachment = &email.Attachment{
					Name:        application.ResumeName,
					Content:     content,
					ContentType: application.ResumeMime,
				}
			}
			reader.Close()
		}
	}

	if err := s.applicationRepo.Create(application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Notifications are best-effort and must not delay or fail the request.
	go s.notifySubmitted(job, application, attachment)

	resp := dto.ApplicationToResponse(application)
	return &resp, nil
}

// storeResume validates the upload, writes it to storage under a
// timestamp-prefixed name and records its metadata on the application. The
// file content is returned so it can be attached to the employer email.
func (s *ApplicationServiceImpl) storeResume(ctx context.Context, resume *ResumeUpload, application *models.Application) ([]byte, error) {
	cfg := config.GetConfig()

	if resume.Size > cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if !mimeAllowed(resume.MimeType, cfg.Upload.AllowedTypes) {
		return nil, apperrors.ErrInvalidFileType
	}

	content, err := io.ReadAll(io.LimitReader(resume.Reader, cfg.Upload.MaxSize+1))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if int64(len(content)) > cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	name := filepath.Base(resume.FileName)
	path := fmt.Sprintf("resumes/%d-%s", time.Now().UnixMilli(), name)

	if err := s.store.Save(ctx, path, bytes.NewReader(content), resume.MimeType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	application.ResumeName = name
	application.ResumeMime = resume.MimeType
	application.ResumeSize = int64(len(content))
	application.ResumePath = path
	return content, nil
}

func (s *ApplicationServiceImpl) attachProfileResume(ctx context.Context, candidateID string, application *models.Application) error {
	profile, err := s.profileRepo.FindCandidateByUserID(candidateID)
	if err != nil || profile.ResumePath == "" {
		return apperrors.ErrResumeRequired
	}

	application.ResumePath = profile.ResumePath
	application.ResumeName = filepath.Base(profile.ResumePath)
	application.ResumeMime = mime.TypeByExtension(filepath.Ext(profile.ResumePath))
	if size, err := s.store.GetSize(ctx, profile.ResumePath); err == nil {
		application.ResumeSize = size
	}
	return nil
}

func (s *ApplicationServiceImpl) notifySubmitted(job *models.Job, application *models.Application, attachment *email.Attachment) {
	if job.Employer != nil {
		body, err := email.RenderNewApplication(email.NewApplicationData{
			JobTitle:    job.Title,
			Name:        application.Name,
			Email:       application.Email,
			CoverLetter: application.CoverLetter,
		})
		if err == nil {
			msg := &email.Message{
				To:      []string{job.Employer.Email},
				Subject: email.NewApplicationSubject(job.Title, application.Name),
				Body:    body,
			}
			if attachment != nil {
				msg.Attachments = []email.Attachment{*attachment}
			}
			if err := s.mailer.Send(msg); err != nil {
				logger.WithError(err).Warn("employer notification failed",
					"job_id", job.ID, "application_id", application.ID)
			}
		}
	}

	body, err := email.RenderApplicationReceived(application.Name, job.Title)
	if err != nil {
		return
	}
	err = s.mailer.Send(&email.Message{
		To:      []string{application.Email},
		Subject: fmt.Sprintf("Application received: %s", job.Title),
		Body:    body,
	})
	if err != nil {
		logger.WithError(err).Warn("applicant confirmation failed",
			"application_id", application.ID)
	}
}

func (s *ApplicationServiceImpl) ListJobApplicants(jobID, employerID string) ([]dto.ApplicantResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwner
	}

	applications, err := s.applicationRepo.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applicantsToResponses(applications, false), nil
}

func (s *ApplicationServiceImpl) ListEmployerApplicants(employerID, requesterID string) ([]dto.ApplicantResponse, error) {
	if employerID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	applications, err := s.applicationRepo.ListByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applicantsToResponses(applications, true), nil
}

func (s *ApplicationServiceImpl) ListCandidateApplications(candidateID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.ListByCandidate(candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, dto.ApplicationToResponse(&applications[i]))
	}
	return responses, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(jobID, applicationID, employerID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwner
	}

	application, err := s.applicationRepo.FindInJob(jobID, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.applicationRepo.UpdateStatus(application.ID, status); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	application.Status = status
	resp := dto.ApplicationToResponse(application)
	return &resp, nil
}

func applicantsToResponses(applications []models.Application, withJob bool) []dto.ApplicantResponse {
	responses := make([]dto.ApplicantResponse, 0, len(applications))
	for i := range applications {
		app := &applications[i]
		row := dto.ApplicantResponse{
			ApplicationResponse: dto.ApplicationToResponse(app),
			Candidate:           candidateToPublicDTO(app.Candidate),
		}
		if withJob && app.Job != nil {
			row.Job = &dto.JobRefDTO{ID: app.Job.ID, Title: app.Job.Title}
		}
		responses = append(responses, row)
	}
	return responses
}

func candidateToPublicDTO(candidate *models.User) *dto.CandidatePublicDTO {
	if candidate == nil {
		return nil
	}
	out := &dto.CandidatePublicDTO{
		ID:    candidate.ID,
		Name:  candidate.Name,
		Email: candidate.Email,
	}
	if candidate.CandidateProfile != nil {
		out.Resume = candidate.CandidateProfile.ResumePath
		if len(candidate.CandidateProfile.Skills) > 0 {
			_ = json.Unmarshal(candidate.CandidateProfile.Skills, &out.Skills)
		}
	}
	return out
}

func mimeAllowed(mimeType string, allowed []string) bool {
	for _, t := range allowed {
		if t == mimeType {
			return true
		}
	}
	return false
}
