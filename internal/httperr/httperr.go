package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFoundStatus(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func ConflictStatus(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func InternalStatus(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond maps a failure from the use-case layer onto an HTTP status.
// Unknown errors become an opaque 500; the cause stays server-side.
func Respond(c *gin.Context, err error) {
	var he *Error
	if !errors.As(err, &he) {
		InternalStatus(c, "internal_error", "An internal error occurred.")
		return
	}

	switch he.Kind {
	case KindValidation:
		BadRequest(c, he.Code, he.Message)
	case KindNotFound:
		NotFoundStatus(c, he.Code, he.Message)
	case KindConflict:
		ConflictStatus(c, he.Code, he.Message)
	default:
		InternalStatus(c, he.Code, he.Message)
	}
}
