package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body. Error carries the human
// message (the contract tested by clients), Code the machine-readable
// constant from codes.go.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RespondWithError writes the standard error body.
func RespondWithError(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func BadRequest(c *gin.Context, code string, message string) {
	RespondWithError(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code string, message string) {
	RespondWithError(c, http.StatusNotFound, code, message)
}

// InternalError deliberately hides store-level detail from the caller;
// the full error is expected to be logged server-side before calling this.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error. Please try again later"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}
