package interview

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/lshigami/auriter/internal/auth"
	"github.com/lshigami/auriter/internal/controller"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/service"
	"github.com/lshigami/auriter/internal/speech"
	"github.com/rs/zerolog/log"
)

const (
	connectTimeout = 10 * time.Second
	writeWait      = 5 * time.Second
)

type streamEvent struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Message string `json:"message,omitempty"`
}

// StreamController relays browser audio to the transcription vendor and
// pushes transcripts back over the same websocket.
type StreamController struct {
	interviewService service.InterviewService
	tokens           *auth.JWTMaker
	newTranscriber   speech.Factory
	upgrader         websocket.Upgrader
}

func NewStreamController(is service.InterviewService, tokens *auth.JWTMaker, factory speech.Factory) *StreamController {
	return &StreamController{
		interviewService: is,
		tokens:           tokens,
		newTranscriber:   factory,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Stream godoc
// @Summary Live transcription relay
// @Description Websocket. Send 16kHz mono audio as binary frames; receive {"type":"transcript","text":...} text frames.
// @Tags Interviews
// @Param roomId path string true "Room ID"
// @Param token query string true "Room token"
// @Param language query string false "Recognition language (default hi)"
// @Success 101
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{roomId}/stream [get]
func (c *StreamController) Stream(ctx *gin.Context) {
	roomID := ctx.Param("roomId")
	claims, err := c.tokens.VerifyRoomToken(ctx.Query("token"))
	if err != nil || claims.RoomID != roomID {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid room token"})
		return
	}
	if _, err := c.interviewService.GetDetails(ctx.Request.Context(), roomID); err != nil {
		controller.RespondError(ctx, err, "Failed to open stream")
		return
	}

	ws, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("roomID", roomID).Msg("Websocket upgrade failed")
		return
	}
	defer ws.Close()

	var writeMu sync.Mutex
	send := func(ev streamEvent) {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := ws.WriteJSON(ev); err != nil {
			log.Debug().Err(err).Str("roomID", roomID).Msg("Failed to write to browser")
		}
	}

	transcriber := c.newTranscriber()
	transcriber.OnTranscript(func(text string) {
		send(streamEvent{Type: "transcript", Text: text})
	})

	dialCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	err = transcriber.Connect(dialCtx, speech.Options{Language: ctx.Query("language")})
	cancel()
	if err != nil {
		send(streamEvent{Type: "error", Message: "Transcription service unavailable"})
		return
	}
	defer transcriber.Close()
	log.Info().Str("roomID", roomID).Str("role", claims.Role).Msg("Transcription stream opened")

	go func() {
		<-transcriber.Done()
		writeMu.Lock()
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "transcription ended"),
			time.Now().Add(writeWait))
		writeMu.Unlock()
		ws.Close()
	}()

	for {
		mt, data, err := ws.ReadMessage()
		if err != nil {
			break
		}
		if mt == websocket.BinaryMessage {
			transcriber.SendAudio(data)
		}
	}
	log.Info().Str("roomID", roomID).Msg("Transcription stream closed")
}
