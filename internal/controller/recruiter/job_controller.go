package recruiter

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/internal/controller"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/service"
	"github.com/rs/zerolog/log"
)

type JobController struct {
	jobService service.JobService
}

func NewJobController(js service.JobService) *JobController {
	return &JobController{jobService: js}
}

// CreateJob godoc
// @Summary (Recruiter) Post a job
// @Tags Recruiter - Jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param job body dto.CreateJobRequest true "Job posting"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /recruiter/jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	user, ok := controller.RequireUser(ctx)
	if !ok {
		return
	}
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Recruiter CreateJob: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	job, err := c.jobService.Create(ctx.Request.Context(), user, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create job")
		return
	}
	ctx.JSON(http.StatusCreated, job)
}

// ListMyJobs godoc
// @Summary (Recruiter) List own job postings
// @Tags Recruiter - Jobs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.JobResponse
// @Router /recruiter/jobs [get]
func (c *JobController) ListMyJobs(ctx *gin.Context) {
	user, ok := controller.RequireUser(ctx)
	if !ok {
		return
	}
	jobs, err := c.jobService.ListByRecruiter(ctx.Request.Context(), user)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to list jobs")
		return
	}
	ctx.JSON(http.StatusOK, jobs)
}

// UpdateJob godoc
// @Summary (Recruiter) Update a job posting
// @Description Only fields present in the body are changed.
// @Tags Recruiter - Jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param job_id path int true "Job ID"
// @Param job body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /recruiter/jobs/{job_id} [patch]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	user, ok := controller.RequireUser(ctx)
	if !ok {
		return
	}
	id, ok := controller.ParseID(ctx, "job_id", "job")
	if !ok {
		return
	}
	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	job, err := c.jobService.Update(ctx.Request.Context(), user, id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update job")
		return
	}
	ctx.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary (Recruiter) Delete a job posting
// @Tags Recruiter - Jobs
// @Security BearerAuth
// @Produce json
// @Param job_id path int true "Job ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /recruiter/jobs/{job_id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	user, ok := controller.RequireUser(ctx)
	if !ok {
		return
	}
	id, ok := controller.ParseID(ctx, "job_id", "job")
	if !ok {
		return
	}
	if err := c.jobService.Delete(ctx.Request.Context(), user, id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete job")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Job deleted"})
}
