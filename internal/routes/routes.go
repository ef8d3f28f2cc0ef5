package routes

import (
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the whole HTTP surface under /api, plus static
// serving of uploaded resumes.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers, uploadsDir string) {
	r.Static("/uploads", uploadsDir)

	api := r.Group("/api")

	// Candidate auth and profile.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.POST("/logout", h.Auth.Logout)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCandidate))
		{
			protected.GET("/profile", h.Auth.GetProfile)
			protected.PUT("/profile", h.Auth.UpdateProfile)
			protected.POST("/profile/resume", h.Auth.UploadProfileResume)
		}
	}

	// Employer accounts and dashboard.
	employers := api.Group("/employers")
	{
		employers.POST("/register", h.Employer.Register)
		employers.POST("/login", h.Employer.Login)

		protected := employers.Group("")
		protected.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
		{
			protected.GET("/profile", h.Employer.GetProfile)
			protected.PUT("/profile", h.Employer.UpdateProfile)
			protected.GET("/stats", h.Employer.Stats)
			protected.GET("/:employerId/applicants", h.Employer.ListApplicants)
		}
	}

	// Jobs: public browsing plus employer management.
	jobs := api.Group("/jobs")
	{
		jobs.GET("", h.Job.List)
		jobs.GET("/:id", h.Job.Get)

		employerOnly := jobs.Group("")
		employerOnly.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
		{
			employerOnly.POST("/post", h.Job.Create)
			employerOnly.GET("/employers/joblist", h.Job.ListMine)
			employerOnly.GET("/:id/applicants", h.Application.ListJobApplicants)
			employerOnly.PUT("/:id/applicants/:applicationId", h.Application.UpdateStatus)
		}
	}

	// Applications.
	api.POST("/apply", h.Application.Apply)

	applications := api.Group("/applications")
	applications.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCandidate))
	{
		applications.POST("/upload-resume", h.Application.SubmitWithResume)
	}

	candidates := api.Group("/candidates")
	candidates.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCandidate))
	{
		candidates.GET("/me/applications", h.Application.MyApplications)
	}
}
