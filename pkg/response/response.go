package response

import (
	"errors"
	"net/http"

	"stellar-payout/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope the browser client understands:
// a message plus optional passthrough details from the ledger failure.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// OK sends a 200 response with the payload as-is. The distribution and
// history payloads are a legacy wire contract and are not wrapped.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Message sends a 200 response with a confirmation message.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResponse{Message: msg})
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps its status, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			Error:   appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "Internal server error",
	})
}
