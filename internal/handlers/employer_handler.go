package handlers

import (
	"net/http"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// EmployerHandler serves employer registration, login, company profile, the
// dashboard stats and the cross-job applicant list.
type EmployerHandler struct {
	*BaseHandler
	authService        services.AuthService
	profileService     services.ProfileService
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewEmployerHandler(
	base *BaseHandler,
	authService services.AuthService,
	profileService services.ProfileService,
	jobService services.JobService,
	applicationService services.ApplicationService,
) *EmployerHandler {
	return &EmployerHandler{
		BaseHandler:        base,
		authService:        authService,
		profileService:     profileService,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

// Register handles POST /api/employers/register
func (h *EmployerHandler) Register(c *gin.Context) {
	var req dto.RegisterEmployerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.RegisterEmployer(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/employers/login. Only employer accounts can log in
// here; candidates get the same error as a bad password.
func (h *EmployerHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req, models.UserRoleEmployer)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProfile handles GET /api/employers/profile
func (h *EmployerHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetEmployerProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProfile handles PUT /api/employers/profile
func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployerProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateEmployerProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Stats handles GET /api/employers/stats
func (h *EmployerHandler) Stats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.jobService.Stats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListApplicants handles GET /api/employers/:employerId/applicants. The path
// id must match the authenticated employer.
func (h *EmployerHandler) ListApplicants(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListEmployerApplicants(c.Param("employerId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applicants": resp})
}
