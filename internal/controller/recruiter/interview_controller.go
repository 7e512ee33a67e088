package recruiter

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/internal/controller"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/service"
)

type InterviewController struct {
	interviewService service.InterviewService
}

func NewInterviewController(is service.InterviewService) *InterviewController {
	return &InterviewController{interviewService: is}
}

// ScheduleInterview godoc
// @Summary (Recruiter) Schedule a mock interview
// @Description Creates a room for an application and emails the candidate a link. Supplied questions are used as-is; otherwise questions are generated from the document. A warning is returned when generation fell back to the default bank.
// @Tags Recruiter - Interviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param interview body dto.ScheduleInterviewRequest true "Application, date, time and optional document or questions"
// @Success 201 {object} dto.ScheduleInterviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Application belongs to another recruiter"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Invitation email failed"
// @Router /recruiter/interviews [post]
func (c *InterviewController) ScheduleInterview(ctx *gin.Context) {
	user, ok := controller.RequireUser(ctx)
	if !ok {
		return
	}
	var req dto.ScheduleInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.interviewService.Schedule(ctx.Request.Context(), user, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to schedule interview")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
