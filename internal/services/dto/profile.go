package dto

import "jobboard_backend/internal/models"

type CandidateProfileResponse struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Role      models.UserRole         `json:"role"`
	Skills    []string                `json:"skills"`
	Education []models.EducationEntry `json:"education"`
	Resume    string                  `json:"resume,omitempty"`
}

type UpdateCandidateProfileRequest struct {
	Name      string                  `json:"name,omitempty"`
	Skills    []string                `json:"skills,omitempty"`
	Education []models.EducationEntry `json:"education,omitempty"`
}

// CompanyDTO mirrors the embedded company sub-record of an employer.
type CompanyDTO struct {
	Name        string `json:"name"`
	ID          string `json:"id,omitempty"`
	Website     string `json:"website,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

type EmployerProfileResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Role    models.UserRole `json:"role"`
	Company CompanyDTO      `json:"company"`
}

type UpdateEmployerProfileRequest struct {
	Name        string `json:"name,omitempty"`
	ID          string `json:"id,omitempty"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}
