package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/internal/controller"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/service"
	"github.com/rs/zerolog/log"
)

type ApplicationController struct {
	applicationService service.ApplicationService
}

func NewApplicationController(as service.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: as}
}

// SubmitApplication godoc
// @Summary Apply to a job
// @Description Multipart upload. The resume is analyzed against the job; when analysis fails the application is still saved and a warning is returned.
// @Tags Applications
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param job_id path int true "Job ID"
// @Param resume formData file true "Resume (pdf, doc, docx, txt, md)"
// @Param coverLetter formData string false "Cover letter"
// @Param additionalNotes formData string false "Additional notes"
// @Success 201 {object} dto.SubmitApplicationResponse
// @Failure 400 {object} dto.ErrorResponse "Missing resume, closed job or duplicate application"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs/{job_id}/applications [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	user, ok := controller.RequireUser(ctx)
	if !ok {
		return
	}
	jobID, ok := controller.ParseID(ctx, "job_id", "job")
	if !ok {
		return
	}

	in := service.SubmitApplicationInput{
		CoverLetter:     ctx.PostForm("coverLetter"),
		AdditionalNotes: ctx.PostForm("additionalNotes"),
	}
	if fh, err := ctx.FormFile("resume"); err == nil {
		f, err := fh.Open()
		if err != nil {
			log.Error().Err(err).Msg("SubmitApplication: failed to open uploaded resume")
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to read resume", Details: []string{err.Error()}})
			return
		}
		defer f.Close()
		in.Resume = &service.ResumeUpload{Filename: fh.Filename, Content: f}
	}

	resp, err := c.applicationService.Submit(ctx.Request.Context(), user, jobID, in)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to submit application")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListMyApplications godoc
// @Summary List my applications
// @Tags Applications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.ApplicationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /applications/mine [get]
func (c *ApplicationController) ListMyApplications(ctx *gin.Context) {
	user, ok := controller.RequireUser(ctx)
	if !ok {
		return
	}
	apps, err := c.applicationService.ListMine(ctx.Request.Context(), user)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to list applications")
		return
	}
	ctx.JSON(http.StatusOK, apps)
}

// GetResumeAnalysis godoc
// @Summary Get the resume analysis of an application
// @Description Visible to the applicant and to the recruiter owning the job.
// @Tags Applications
// @Security BearerAuth
// @Produce json
// @Param application_id path int true "Application ID"
// @Success 200 {object} dto.ResumeAnalysisResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Application or analysis not found"
// @Router /applications/{application_id}/analysis [get]
func (c *ApplicationController) GetResumeAnalysis(ctx *gin.Context) {
	user, ok := controller.RequireUser(ctx)
	if !ok {
		return
	}
	id, ok := controller.ParseID(ctx, "application_id", "application")
	if !ok {
		return
	}
	analysis, err := c.applicationService.GetAnalysis(ctx.Request.Context(), user, id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch resume analysis")
		return
	}
	ctx.JSON(http.StatusOK, analysis)
}
