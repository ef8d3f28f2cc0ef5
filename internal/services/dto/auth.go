package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type RegisterCandidateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`

	Skills    []string                `json:"skills,omitempty"`
	Education []models.EducationEntry `json:"education,omitempty"`
}

type RegisterEmployerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`

	CompanyName    string `json:"companyName" validate:"required"`
	CompanyID      string `json:"companyId,omitempty"`
	CompanyWebsite string `json:"companyWebsite,omitempty" validate:"omitempty,url"`
	CompanyEmail   string `json:"companyEmail,omitempty" validate:"omitempty,email"`
	CompanyPhone   string `json:"companyPhone,omitempty"`
	CompanyAddress string `json:"companyAddress,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UserDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

type AuthResponse struct {
	Message      string          `json:"message"`
	AccessToken  string          `json:"token"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	Role         models.UserRole `json:"role"`
	User         UserDTO         `json:"user"`
}
