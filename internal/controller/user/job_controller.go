package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/internal/controller"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/service"
)

type JobController struct {
	jobService service.JobService
}

func NewJobController(js service.JobService) *JobController {
	return &JobController{jobService: js}
}

// SearchJobs godoc
// @Summary Search job postings
// @Description Lists active jobs by default, newest first.
// @Tags Jobs
// @Produce json
// @Param search query string false "Matches title, company or description"
// @Param location query string false "Location substring"
// @Param type query string false "Job type"
// @Param status query string false "active or closed"
// @Param experienceMin query int false "Minimum years"
// @Param experienceMax query int false "Maximum years"
// @Param salaryMin query int false "Minimum salary"
// @Param salaryMax query int false "Maximum salary"
// @Param skills query string false "Comma separated skills, all required"
// @Success 200 {array} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs [get]
func (c *JobController) SearchJobs(ctx *gin.Context) {
	var q dto.JobSearchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.BindError(ctx, err)
		return
	}
	jobs, err := c.jobService.Search(ctx.Request.Context(), q)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to search jobs")
		return
	}
	ctx.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get a job posting
// @Tags Jobs
// @Produce json
// @Param job_id path int true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid job ID format"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{job_id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "job_id", "job")
	if !ok {
		return
	}
	job, err := c.jobService.Get(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch job")
		return
	}
	ctx.JSON(http.StatusOK, job)
}
