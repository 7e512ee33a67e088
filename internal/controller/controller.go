// Package controller holds helpers shared by the HTTP handlers in its subpackages.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/auriter/internal/dto"
	"github.com/lshigami/auriter/internal/middleware"
	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/service"
	"github.com/rs/zerolog/log"
)

// RespondError writes err with the status matching its service error kind.
// Unknown errors become 500 with the fallback message.
func RespondError(ctx *gin.Context, err error, fallback string) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		ctx.JSON(statusFor(svcErr.Kind), dto.ErrorResponse{Message: svcErr.Message})
		return
	}
	log.Error().Err(err).Str("path", ctx.FullPath()).Msg(fallback)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback, Details: []string{err.Error()}})
}

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(kind, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(kind, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(kind, service.ErrUnauthorized):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// BindError reports a request body or query that failed validation.
func BindError(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// ParseID reads a uint path parameter, writing a 400 when it is malformed.
func ParseID(ctx *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + label + " ID format"})
		return 0, false
	}
	return uint(id), true
}

// RequireUser returns the authenticated user, writing a 401 when the route
// was reached without one.
func RequireUser(ctx *gin.Context) (*model.User, bool) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized"})
	}
	return user, ok
}
