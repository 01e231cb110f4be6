package view

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palmview/hotel-booking-web/internal/auth"
	"github.com/palmview/hotel-booking-web/internal/pkg/apperror"
)

// Data merges page data with the fields every template expects.
func Data(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Session"] = auth.CurrentSession(c)
	return data
}

// ErrorMessage extracts the user-facing message from an error. Backend
// messages are surfaced verbatim; anything else gets a generic retry prompt.
func ErrorMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "something went wrong, please try again"
}

// StatusOf picks the HTTP status to render an error page with.
func StatusOf(err error) int {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind == apperror.KindNetwork {
			return http.StatusBadGateway
		}
		if appErr.Code >= 400 {
			return appErr.Code
		}
	}
	return http.StatusInternalServerError
}
