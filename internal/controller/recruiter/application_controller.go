package recruiter

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/internal/controller"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApplicationController struct {
	applicationService service.ApplicationService
}

func NewApplicationController(as service.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: as}
}

// SearchApplications godoc
// @Summary (Recruiter) Search applications to own jobs
// @Description Filters are combined. "all" disables a status or job type filter.
// @Tags Recruiter - Applications
// @Security BearerAuth
// @Produce json
// @Param searchTerm query string false "Matches job title, applicant name or email"
// @Param status query string false "pending, reviewed, shortlisted, rejected or all"
// @Param jobType query string false "Job type or all"
// @Param dateRange query string false "start,end as YYYY-MM-DD"
// @Success 200 {object} dto.ApplicationListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /recruiter/applications [get]
func (c *ApplicationController) SearchApplications(ctx *gin.Context) {
	user, ok := controller.RequireUser(ctx)
	if !ok {
		return
	}
	var q dto.ApplicationSearchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.applicationService.Search(ctx.Request.Context(), user, q)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to search applications")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ExportApplications godoc
// @Summary (Recruiter) Export applications as a spreadsheet
// @Description Same filters as the search endpoint.
// @Tags Recruiter - Applications
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param searchTerm query string false "Matches job title, applicant name or email"
// @Param status query string false "Status or all"
// @Param jobType query string false "Job type or all"
// @Param dateRange query string false "start,end as YYYY-MM-DD"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Router /recruiter/applications/export [get]
func (c *ApplicationController) ExportApplications(ctx *gin.Context) {
	user, ok := controller.RequireUser(ctx)
	if !ok {
		return
	}
	var q dto.ApplicationSearchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.BindError(ctx, err)
		return
	}
	buf, err := c.applicationService.Export(ctx.Request.Context(), user, q)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to export applications")
		return
	}
	filename := fmt.Sprintf("applications-%s.xlsx", time.Now().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ListJobApplications godoc
// @Summary (Recruiter) List applications to one job
// @Tags Recruiter - Applications
// @Security BearerAuth
// @Produce json
// @Param job_id path int true "Job ID"
// @Success 200 {array} dto.ApplicationResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /recruiter/jobs/{job_id}/applications [get]
func (c *ApplicationController) ListJobApplications(ctx *gin.Context) {
	user, ok := controller.RequireUser(ctx)
	if !ok {
		return
	}
	jobID, ok := controller.ParseID(ctx, "job_id", "job")
	if !ok {
		return
	}
	apps, err := c.applicationService.ListForJob(ctx.Request.Context(), user, jobID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to list applications")
		return
	}
	ctx.JSON(http.StatusOK, apps)
}

// UpdateApplicationStatus godoc
// @Summary (Recruiter) Change an application's status
// @Tags Recruiter - Applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param application_id path int true "Application ID"
// @Param status body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.UpdateApplicationStatusResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /recruiter/applications/{application_id}/status [patch]
func (c *ApplicationController) UpdateApplicationStatus(ctx *gin.Context) {
	user, ok := controller.RequireUser(ctx)
	if !ok {
		return
	}
	id, ok := controller.ParseID(ctx, "application_id", "application")
	if !ok {
		return
	}
	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.applicationService.UpdateStatus(ctx.Request.Context(), user, id, req.Status)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update application status")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
