package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/config"
	"github.com/lshigami/auriter/internal/auth"
	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	repository.UserRepository
	users map[uint]*model.User
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func TestProtectAndRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	maker := auth.NewJWTMaker(&config.Config{JWTSecret: "middleware-secret"})
	repo := &stubUserRepo{users: map[uint]*model.User{
		1: {ID: 1, Email: "seeker@example.com", Role: model.RoleJobSeeker},
		2: {ID: 2, Email: "hr@example.com", Role: model.RoleRecruiter},
	}}
	m := NewAuthMiddleware(maker, repo)

	r := gin.New()
	r.GET("/me", m.Protect(), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.String(http.StatusOK, user.Email)
	})
	r.GET("/recruiter", m.Protect(), m.RequireRole(model.RoleRecruiter), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	token := func(id uint, role string) string {
		tok, _, err := maker.CreateUserToken(id, "", role)
		require.NoError(t, err)
		return "Bearer " + tok
	}

	tests := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"valid token", "/me", token(1, model.RoleJobSeeker), http.StatusOK},
		{"missing header", "/me", "", http.StatusUnauthorized},
		{"wrong scheme", "/me", "Token abc", http.StatusUnauthorized},
		{"unknown user", "/me", token(99, model.RoleJobSeeker), http.StatusUnauthorized},
		{"recruiter route as seeker", "/recruiter", token(1, model.RoleJobSeeker), http.StatusForbidden},
		{"recruiter route as recruiter", "/recruiter", token(2, model.RoleRecruiter), http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
