package handlers

import (
	"net/http"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

// Apply handles POST /api/apply, the public application form. A resume file
// is mandatory here; there is no profile to fall back on. When the caller
// happens to send a valid candidate token the application is attributed to
// that account.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	resume, ok := h.FormResume(c, "resume")
	if !ok {
		return
	}

	resp, err := h.applicationService.Submit(c.Request.Context(), &req, resume, optionalCandidateID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application submitted successfully", "application": resp})
}

// SubmitWithResume handles POST /api/applications/upload-resume, the
// authenticated variant of Apply. The resume part is optional: without one,
// the candidate's stored profile resume is used.
func (h *ApplicationHandler) SubmitWithResume(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	resume, ok := h.FormResume(c, "resume")
	if !ok {
		return
	}

	resp, err := h.applicationService.Submit(c.Request.Context(), &req, resume, &userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully", "application": resp})
}

// MyApplications handles GET /api/candidates/me/applications
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListCandidateApplications(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": resp})
}

// ListJobApplicants handles GET /api/jobs/:id/applicants
func (h *ApplicationHandler) ListJobApplicants(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListJobApplicants(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applicants": resp})
}

// UpdateStatus handles PUT /api/jobs/:id/applicants/:applicationId
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.applicationService.UpdateStatus(
		c.Param("id"),
		c.Param("applicationId"),
		userID,
		models.ApplicationStatus(req.Status),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application status updated", "application": resp})
}

// optionalCandidateID resolves a candidate id from an optional Bearer token on
// a public route. Invalid or non-candidate tokens are ignored, not rejected.
func optionalCandidateID(c *gin.Context) *string {
	if id := middleware.GetUserID(c); id != "" {
		return &id
	}

	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}

	claims, err := auth.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil || models.UserRole(claims.Role) != models.UserRoleCandidate {
		return nil
	}
	return &claims.UserID
}
