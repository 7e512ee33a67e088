package user

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/middleware"
	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubApplicationService struct {
	service.ApplicationService
	jobID   uint
	input   service.SubmitApplicationInput
	content string
}

func (s *stubApplicationService) Submit(_ context.Context, _ *model.User, jobID uint, in service.SubmitApplicationInput) (*dto.SubmitApplicationResponse, error) {
	s.jobID = jobID
	s.input = in
	if in.Resume == nil {
		return nil, &service.Error{Kind: service.ErrInvalidInput, Message: "Resume is required"}
	}
	b, _ := io.ReadAll(in.Resume.Content)
	s.content = string(b)
	return &dto.SubmitApplicationResponse{Success: true, Warning: "Resume analysis service temporarily unavailable"}, nil
}

func newApplicationRouter(svc service.ApplicationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	seeker := &model.User{ID: 3, Role: model.RoleJobSeeker}
	r.POST("/jobs/:job_id/applications", func(c *gin.Context) {
		middleware.SetCurrentUser(c, seeker)
		c.Next()
	}, NewApplicationController(svc).SubmitApplication)
	return r
}

func multipartBody(t *testing.T, withResume bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("coverLetter", "I like Go."))
	require.NoError(t, mw.WriteField("additionalNotes", "Remote only."))
	if withResume {
		fw, err := mw.CreateFormFile("resume", "cv.txt")
		require.NoError(t, err)
		_, err = fw.Write([]byte("Ten years of backend work."))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestSubmitApplication(t *testing.T) {
	t.Run("form fields and resume reach the service", func(t *testing.T) {
		svc := &stubApplicationService{}
		r := newApplicationRouter(svc)
		body, contentType := multipartBody(t, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jobs/12/applications", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(12), svc.jobID)
		assert.Equal(t, "I like Go.", svc.input.CoverLetter)
		assert.Equal(t, "Remote only.", svc.input.AdditionalNotes)
		assert.Equal(t, "cv.txt", svc.input.Resume.Filename)
		assert.Equal(t, "Ten years of backend work.", svc.content)
		assert.Contains(t, w.Body.String(), "temporarily unavailable")
	})

	t.Run("missing resume", func(t *testing.T) {
		svc := &stubApplicationService{}
		r := newApplicationRouter(svc)
		body, contentType := multipartBody(t, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jobs/12/applications", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, svc.input.Resume)
	})

	t.Run("bad job id", func(t *testing.T) {
		r := newApplicationRouter(&stubApplicationService{})
		body, contentType := multipartBody(t, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jobs/abc/applications", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
