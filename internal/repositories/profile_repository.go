package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	CreateCandidateProfile(profile *models.CandidateProfile) error
	CreateEmployerProfile(profile *models.EmployerProfile) error
	FindCandidateByUserID(userID string) (*models.CandidateProfile, error)
	FindEmployerByUserID(userID string) (*models.EmployerProfile, error)
	UpdateCandidateProfile(profile *models.CandidateProfile) error
	UpdateEmployerProfile(profile *models.EmployerProfile) error
	SetCandidateResume(userID, resumePath string) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) CreateCandidateProfile(profile *models.CandidateProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateEmployerProfile(profile *models.EmployerProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindCandidateByUserID(userID string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindEmployerByUserID(userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateCandidateProfile(profile *models.CandidateProfile) error {
	result := r.db.Model(&models.CandidateProfile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"skills":      profile.Skills,
			"education":   profile.Education,
			"resume_path": profile.ResumePath,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateEmployerProfile(profile *models.EmployerProfile) error {
	result := r.db.Model(&models.EmployerProfile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"company_name":  profile.CompanyName,
			"company_id":    profile.CompanyID,
			"website":       profile.Website,
			"contact_email": profile.ContactEmail,
			"phone":         profile.Phone,
			"address":       profile.Address,
			"logo":          profile.Logo,
			"description":   profile.Description,
			"location":      profile.Location,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) SetCandidateResume(userID, resumePath string) error {
	result := r.db.Model(&models.CandidateProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"resume_path": resumePath,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
