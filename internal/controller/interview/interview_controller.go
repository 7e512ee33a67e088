package interview

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/internal/controller"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService service.InterviewService
}

func NewInterviewController(is service.InterviewService) *InterviewController {
	return &InterviewController{interviewService: is}
}

// GetInterviewDetails godoc
// @Summary Get interview details
// @Description Date, time, job title and source document of a scheduled interview.
// @Tags Interviews
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} dto.InterviewDetailsResponse
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /interviews/{roomId} [get]
func (c *InterviewController) GetInterviewDetails(ctx *gin.Context) {
	details, err := c.interviewService.GetDetails(ctx.Request.Context(), ctx.Param("roomId"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch interview details")
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// GetInterviewQuestions godoc
// @Summary Get interview questions
// @Description Five generic questions followed by the interview's technical questions. Technical questions are generated from the source document on first call and stored.
// @Tags Interviews
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} dto.InterviewQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /interviews/{roomId}/questions [get]
func (c *InterviewController) GetInterviewQuestions(ctx *gin.Context) {
	questions, err := c.interviewService.GetQuestions(ctx.Request.Context(), ctx.Param("roomId"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch interview questions")
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// SubmitResponse godoc
// @Summary Submit an answer
// @Tags Interviews
// @Accept json
// @Produce json
// @Param roomId path string true "Room ID"
// @Param response body dto.SubmitResponseRequest true "Question and answer"
// @Success 201 {object} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /interviews/{roomId}/responses [post]
func (c *InterviewController) SubmitResponse(ctx *gin.Context) {
	var req dto.SubmitResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	saved, err := c.interviewService.SubmitResponse(ctx.Request.Context(), ctx.Param("roomId"), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to save response")
		return
	}
	ctx.JSON(http.StatusCreated, saved)
}

// ListResponses godoc
// @Summary List submitted answers
// @Tags Interviews
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {array} dto.InterviewResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{roomId}/responses [get]
func (c *InterviewController) ListResponses(ctx *gin.Context) {
	responses, err := c.interviewService.ListResponses(ctx.Request.Context(), ctx.Param("roomId"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to list responses")
		return
	}
	ctx.JSON(http.StatusOK, responses)
}

// AnalyzeResponses godoc
// @Summary Score interview answers
// @Description Always returns a complete analysis. When the model is unavailable or its output is unusable, a default analysis is returned with a warning.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param analysis body dto.AnalyzeResponsesRequest true "Questions and answers in the same order"
// @Success 200 {object} dto.AnalyzeResponsesResponse
// @Failure 400 {object} dto.ErrorResponse "Questions or answers missing"
// @Router /interviews/analyze [post]
func (c *InterviewController) AnalyzeResponses(ctx *gin.Context) {
	var req dto.AnalyzeResponsesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("AnalyzeResponses: invalid body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Questions or answers are missing in the request body.", Details: []string{err.Error()}})
		return
	}
	result, err := c.interviewService.Analyze(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to analyze responses")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CreateRoomToken godoc
// @Summary Issue a room token
// @Description Short-lived token for joining the live session as host or guest.
// @Tags Interviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param roomId path string true "Room ID"
// @Param role body dto.RoomTokenRequest true "host or guest"
// @Success 200 {object} dto.RoomTokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{roomId}/token [post]
func (c *InterviewController) CreateRoomToken(ctx *gin.Context) {
	var req dto.RoomTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	token, err := c.interviewService.RoomToken(ctx.Request.Context(), ctx.Param("roomId"), req.Role)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to issue room token")
		return
	}
	ctx.JSON(http.StatusOK, token)
}
