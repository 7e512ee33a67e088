package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/internal/auth"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/repository"
	"github.com/rs/zerolog/log"
)

const userKey = "currentUser"

type AuthMiddleware struct {
	maker    *auth.JWTMaker
	userRepo repository.UserRepository
}

func NewAuthMiddleware(maker *auth.JWTMaker, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{maker: maker, userRepo: userRepo}
}

// Protect rejects requests without a valid bearer token for an existing user.
func (m *AuthMiddleware) Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyClaimsFromAuthHeader(c, m.maker)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized", Details: []string{err.Error()}})
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			log.Warn().Err(err).Uint("userID", claims.UserID).Msg("Token references unknown user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized"})
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// RequireRole must run after Protect.
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: fmt.Sprintf("Only %s accounts can access this resource", role)})
			return
		}
		c.Next()
	}
}

func SetCurrentUser(c *gin.Context, user *model.User) {
	c.Set(userKey, user)
}

// CurrentUser returns the user loaded by Protect.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

func verifyClaimsFromAuthHeader(c *gin.Context, maker *auth.JWTMaker) (*auth.UserClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errors.New("authorization header is missing")
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || fields[0] != "Bearer" {
		return nil, errors.New("invalid authorization header")
	}

	claims, err := maker.VerifyUserToken(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims, nil
}
