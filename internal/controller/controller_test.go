package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", &service.Error{Kind: service.ErrNotFound, Message: "Interview not found"}, http.StatusNotFound, "Interview not found"},
		{"forbidden", &service.Error{Kind: service.ErrForbidden, Message: "nope"}, http.StatusForbidden, "nope"},
		{"invalid", &service.Error{Kind: service.ErrInvalidInput, Message: "bad"}, http.StatusBadRequest, "bad"},
		{"unauthorized", &service.Error{Kind: service.ErrUnauthorized, Message: "Invalid credentials"}, http.StatusUnauthorized, "Invalid credentials"},
		{"wrapped kind", fmt.Errorf("ctx: %w", &service.Error{Kind: service.ErrConflict, Message: "dup"}), http.StatusConflict, "dup"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "Failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			RespondError(ctx, tt.err, "Failed")

			assert.Equal(t, tt.status, w.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		raw string
		ok  bool
	}{{"12", true}, {"0", false}, {"abc", false}, {"-1", false}} {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: tc.raw}}

		id, ok := ParseID(ctx, "id", "Job")
		assert.Equal(t, tc.ok, ok, tc.raw)
		if ok {
			assert.Equal(t, uint(12), id)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
