package apperrors

import (
	"eventcms_backend/internal/response"

	"github.com/gin-gonic/gin"
)

// GinErrorHandler normalizes any error into the response envelope.
type GinErrorHandler struct {
	Debug bool
}

// Handle converts err to an AppError and writes the failure envelope.
// Non-AppError values become a redacted 500 unless Debug is set.
func (h *GinErrorHandler) Handle(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	message := appErr.Message
	details := appErr.Details
	if appErr.HTTPCode >= 500 && !h.Debug {
		message = "Internal server error"
		details = nil
	}

	response.Error(c, appErr.HTTPCode, message, details)
}

// defaultHandler is configured once at startup via SetDebug.
var defaultHandler = &GinErrorHandler{}

// SetDebug toggles error detail exposure; call it once from app wiring.
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

// HandleError is the helper handlers and middleware call at the boundary.
func HandleError(c *gin.Context, err error) {
	defaultHandler.Handle(c, err)
}

// AsAppError unwraps err to an *AppError if one is in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
