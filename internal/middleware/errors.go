package middleware

import (
	"net/http"

	"github.com/Arun-hash30/Attendence-helix/internal/shared/apperror"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/response"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New("INVALID_TOKEN", "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New("TOKEN_EXPIRED", "Token has expired", http.StatusUnauthorized)
	ErrForbidden     = apperror.ErrForbidden
	ErrTooMany       = apperror.New(apperror.CodeTooManyRequests, "Too many requests", http.StatusTooManyRequests)
	ErrInProgress    = apperror.New("PROCESSING", "Request with this idempotency key is still being processed", http.StatusConflict)
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}
