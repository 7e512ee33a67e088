package interview

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/lshigami/auriter/config"
	"github.com/lshigami/auriter/internal/auth"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/speech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranscriber struct {
	mu         sync.Mutex
	sink       func(string)
	language   string
	connectErr error
	audio      chan []byte
	connected  chan struct{}
	done       chan struct{}
	closeOnce  sync.Once
}

func newFakeTranscriber() *fakeTranscriber {
	return &fakeTranscriber{
		audio:     make(chan []byte, 8),
		connected: make(chan struct{}),
		done:      make(chan struct{}),
	}
}

func (f *fakeTranscriber) OnTranscript(sink func(string)) {
	f.mu.Lock()
	f.sink = sink
	f.mu.Unlock()
}

func (f *fakeTranscriber) Connect(_ context.Context, opts speech.Options) error {
	if f.connectErr != nil {
		return f.connectErr
	}
	f.mu.Lock()
	f.language = opts.Language
	f.mu.Unlock()
	close(f.connected)
	return nil
}

func (f *fakeTranscriber) SendAudio(frame []byte) { f.audio <- frame }

func (f *fakeTranscriber) Close() error {
	f.closeOnce.Do(func() { close(f.done) })
	return nil
}

func (f *fakeTranscriber) Done() <-chan struct{} { return f.done }

func (f *fakeTranscriber) emit(text string) {
	f.mu.Lock()
	sink := f.sink
	f.mu.Unlock()
	sink(text)
}

func newStreamServer(t *testing.T, tr *fakeTranscriber) (*httptest.Server, *auth.JWTMaker) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := auth.NewJWTMaker(&config.Config{JWTSecret: "stream-secret"})
	svc := &stubInterviewService{details: func(roomID string) (*dto.InterviewDetailsResponse, error) {
		if roomID != "room-1" {
			return nil, errInterviewNotFound
		}
		return &dto.InterviewDetailsResponse{}, nil
	}}
	c := NewStreamController(svc, tokens, func() speech.Transcriber { return tr })

	r := gin.New()
	r.GET("/interviews/:roomId/stream", c.Stream)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, tokens
}

func wsURL(srv *httptest.Server, roomID, token string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/interviews/" + roomID + "/stream?language=en&token=" + token
}

func TestStreamRelaysAudioAndTranscripts(t *testing.T) {
	tr := newFakeTranscriber()
	srv, tokens := newStreamServer(t, tr)
	token, err := tokens.CreateRoomToken("room-1", auth.RoomRoleGuest)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "room-1", token), nil)
	require.NoError(t, err)
	defer conn.Close()

	select {
	case <-tr.connected:
	case <-time.After(2 * time.Second):
		t.Fatal("transcriber never connected")
	}
	assert.Equal(t, "en", tr.language)

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3}))
	select {
	case frame := <-tr.audio:
		assert.Equal(t, []byte{1, 2, 3}, frame)
	case <-time.After(2 * time.Second):
		t.Fatal("audio frame not relayed")
	}

	tr.emit("hello world")
	var ev streamEvent
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, streamEvent{Type: "transcript", Text: "hello world"}, ev)
}

func TestStreamClosesWhenVendorEnds(t *testing.T) {
	tr := newFakeTranscriber()
	srv, tokens := newStreamServer(t, tr)
	token, err := tokens.CreateRoomToken("room-1", auth.RoomRoleHost)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "room-1", token), nil)
	require.NoError(t, err)
	defer conn.Close()
	<-tr.connected

	tr.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestStreamRejectsBadTokens(t *testing.T) {
	tr := newFakeTranscriber()
	srv, tokens := newStreamServer(t, tr)
	otherRoom, err := tokens.CreateRoomToken("room-2", auth.RoomRoleGuest)
	require.NoError(t, err)

	for name, token := range map[string]string{"missing": "", "garbage": "abc", "other room": otherRoom} {
		t.Run(name, func(t *testing.T) {
			_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "room-1", token), nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestStreamReportsVendorFailure(t *testing.T) {
	tr := newFakeTranscriber()
	tr.connectErr = errors.New("dial refused")
	srv, tokens := newStreamServer(t, tr)
	token, err := tokens.CreateRoomToken("room-1", auth.RoomRoleGuest)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "room-1", token), nil)
	require.NoError(t, err)
	defer conn.Close()

	var ev streamEvent
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "error", ev.Type)
}
