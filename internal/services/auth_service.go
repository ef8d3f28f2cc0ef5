package services

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type AuthService interface {
	RegisterCandidate(req *dto.RegisterCandidateRequest) (*dto.AuthResponse, error)
	RegisterEmployer(req *dto.RegisterEmployerRequest) (*dto.AuthResponse, error)
	// Login authenticates by email and password. When requireRole is
	// non-empty, a user of any other role gets the same generic
	// invalid-credentials error as a wrong password.
	Login(req *dto.LoginRequest, requireRole models.UserRole) (*dto.AuthResponse, error)
	RefreshToken(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
}

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *AuthServiceImpl) RegisterCandidate(req *dto.RegisterCandidateRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         models.UserRoleCandidate,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	profile := &models.CandidateProfile{
		UserID:    user.ID,
		Skills:    mustJSON(req.Skills),
		Education: mustJSON(req.Education),
	}
	if err := s.profileRepo.CreateCandidateProfile(profile); err != nil {
		s.userRepo.Delete(user.ID)
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user, "Registration successful")
}

func (s *AuthServiceImpl) RegisterEmployer(req *dto.RegisterEmployerRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         models.UserRoleEmployer,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	profile := &models.EmployerProfile{
		UserID:       user.ID,
		CompanyName:  req.CompanyName,
		CompanyID:    req.CompanyID,
		Website:      req.CompanyWebsite,
		ContactEmail: req.CompanyEmail,
		Phone:        req.CompanyPhone,
		Address:      req.CompanyAddress,
	}
	if err := s.profileRepo.CreateEmployerProfile(profile); err != nil {
		s.userRepo.Delete(user.ID)
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user, "Employer registered successfully")
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest, requireRole models.UserRole) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if requireRole != "" && user.Role != requireRole {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user, "Login successful")
}

func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.AuthResponse, error) {
	token, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Rotate: the presented token is consumed.
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user, "Token refreshed")
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return apperrors.ErrInvalidToken
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User, message string) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Message:      message,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         user.Role,
		User: dto.UserDTO{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func (s *AuthServiceImpl) createRefreshToken(userID string) (string, error) {
	token := generateRandomToken()
	err := s.userRepo.CreateRefreshToken(&models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

func generateRandomToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// mustJSON marshals a value that cannot fail (slices of plain structs and
// strings); nil input yields an empty JSON array.
func mustJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return datatypes.JSON("[]")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}
