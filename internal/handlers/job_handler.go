package handlers

import (
	"net/http"

	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.SearchJobs)

		// /employer has to sit above /:id or gin matches it as an id.
		jobs.GET("/employer", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer), h.GetEmployerJobs)

		// Optional auth: owners can see their own non-active postings.
		jobs.GET("/:id", middleware.OptionalAuthMiddleware(), h.GetJob)

		jobs.POST("", middleware.AuthMiddleware(), h.CreateJob)
		jobs.PUT("/:id", middleware.AuthMiddleware(), h.UpdateJob)
		jobs.DELETE("/:id", middleware.AuthMiddleware(), h.DeleteJob)
	}
}

func (h *JobHandler) SearchJobs(c *gin.Context) {
	var req dto.SearchJobsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	response, err := h.jobService.SearchJobs(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("id")

	response, err := h.jobService.GetJob(c.Request.Context(), jobID, h.Principal(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.jobService.CreateJob(c.Request.Context(), h.Principal(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	jobID := c.Param("id")

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.jobService.UpdateJob(c.Request.Context(), jobID, h.Principal(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID := c.Param("id")

	if err := h.jobService.DeleteJob(c.Request.Context(), jobID, h.Principal(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job deleted successfully",
	})
}

func (h *JobHandler) GetEmployerJobs(c *gin.Context) {
	jobs, err := h.jobService.GetEmployerJobs(c.Request.Context(), h.Principal(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs": jobs,
	})
}
