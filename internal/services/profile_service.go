package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"
)

type ProfileService interface {
	GetCandidateProfile(userID string) (*dto.CandidateProfileResponse, error)
	UpdateCandidateProfile(userID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error)
	// UploadResume stores a new resume for the candidate and makes it the
	// default for future applications. Returns the storage path.
	UploadResume(ctx context.Context, userID string, resume *ResumeUpload) (string, error)

	GetEmployerProfile(userID string) (*dto.EmployerProfileResponse, error)
	UpdateEmployerProfile(userID string, req *dto.UpdateEmployerProfileRequest) (*dto.EmployerProfileResponse, error)
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	store       storage.Storage
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	store storage.Storage,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		store:       store,
	}
}

func (s *ProfileServiceImpl) GetCandidateProfile(userID string) (*dto.CandidateProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrCandidateNotFound
	}
	if user.Role != models.UserRoleCandidate || user.CandidateProfile == nil {
		return nil, apperrors.ErrCandidateNotFound
	}
	return candidateProfileToResponse(user, user.CandidateProfile), nil
}

func (s *ProfileServiceImpl) UpdateCandidateProfile(userID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrCandidateNotFound
	}
	profile := user.CandidateProfile
	if user.Role != models.UserRoleCandidate || profile == nil {
		return nil, apperrors.ErrCandidateNotFound
	}

	if req.Name != "" && req.Name != user.Name {
		user.Name = req.Name
		if err := s.userRepo.Update(user); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if req.Skills != nil {
		profile.Skills = mustJSON(req.Skills)
	}
	if req.Education != nil {
		profile.Education = mustJSON(req.Education)
	}
	if err := s.profileRepo.UpdateCandidateProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return candidateProfileToResponse(user, profile), nil
}

func (s *ProfileServiceImpl) UploadResume(ctx context.Context, userID string, resume *ResumeUpload) (string, error) {
	cfg := config.GetConfig()

	if resume.Size > cfg.Upload.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}
	if !mimeAllowed(resume.MimeType, cfg.Upload.AllowedTypes) {
		return "", apperrors.ErrInvalidFileType
	}

	content, err := io.ReadAll(io.LimitReader(resume.Reader, cfg.Upload.MaxSize+1))
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	if int64(len(content)) > cfg.Upload.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	path := fmt.Sprintf("resumes/%d-%s", time.Now().UnixMilli(), filepath.Base(resume.FileName))
	if err := s.store.Save(ctx, path, bytes.NewReader(content), resume.MimeType); err != nil {
		return "", apperrors.InternalError(err)
	}

	if err := s.profileRepo.SetCandidateResume(userID, path); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return "", apperrors.ErrCandidateNotFound
		}
		return "", apperrors.InternalError(err)
	}
	return path, nil
}

func (s *ProfileServiceImpl) GetEmployerProfile(userID string) (*dto.EmployerProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrEmployerNotFound
	}
	if user.Role != models.UserRoleEmployer || user.EmployerProfile == nil {
		return nil, apperrors.ErrEmployerNotFound
	}
	return employerProfileToResponse(user, user.EmployerProfile), nil
}

func (s *ProfileServiceImpl) UpdateEmployerProfile(userID string, req *dto.UpdateEmployerProfileRequest) (*dto.EmployerProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrEmployerNotFound
	}
	profile := user.EmployerProfile
	if user.Role != models.UserRoleEmployer || profile == nil {
		return nil, apperrors.ErrEmployerNotFound
	}

	if req.Name != "" {
		profile.CompanyName = req.Name
	}
	if req.ID != "" {
		profile.CompanyID = req.ID
	}
	if req.Website != "" {
		profile.Website = req.Website
	}
	if req.Email != "" {
		profile.ContactEmail = req.Email
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.Address != "" {
		profile.Address = req.Address
	}
	if req.Logo != "" {
		profile.Logo = req.Logo
	}
	if req.Description != "" {
		profile.Description = req.Description
	}
	if req.Location != "" {
		profile.Location = req.Location
	}

	if err := s.profileRepo.UpdateEmployerProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return employerProfileToResponse(user, profile), nil
}

func candidateProfileToResponse(user *models.User, profile *models.CandidateProfile) *dto.CandidateProfileResponse {
	resp := &dto.CandidateProfileResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Resume: profile.ResumePath,
	}
	if len(profile.Skills) > 0 {
		_ = json.Unmarshal(profile.Skills, &resp.Skills)
	}
	if len(profile.Education) > 0 {
		_ = json.Unmarshal(profile.Education, &resp.Education)
	}
	return resp
}

func employerProfileToResponse(user *models.User, profile *models.EmployerProfile) *dto.EmployerProfileResponse {
	return &dto.EmployerProfileResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Company: dto.CompanyDTO{
			Name:        profile.CompanyName,
			ID:          profile.CompanyID,
			Website:     profile.Website,
			Email:       profile.ContactEmail,
			Phone:       profile.Phone,
			Address:     profile.Address,
			Logo:        profile.Logo,
			Description: profile.Description,
			Location:    profile.Location,
		},
	}
}
