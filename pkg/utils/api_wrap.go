package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Wire format of the public API: records and envelopes go out as raw JSON,
// failures as plain-text messages. Endpoints that deviate (photo upload's
// JSON not-found body, business modify's 400) override in their controller.

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondText(c *gin.Context, code int, message string) {
	c.String(code, message)
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBusinessNotFound):
		c.String(http.StatusNotFound, "Business Not Found")
	case errors.Is(err, ErrReviewNotFound):
		c.String(http.StatusNotFound, "Review Not Found")
	case errors.Is(err, ErrPhotoNotFound):
		c.String(http.StatusNotFound, "Photo Not Found")
	case errors.Is(err, ErrMissingRequiredFields):
		c.String(http.StatusBadRequest, "Missing Required fields")
	case errors.Is(err, ErrMissingRatingFields):
		c.String(http.StatusTeapot, "One of the Required Fields is Missing.")
	case errors.Is(err, ErrDatabaseError):
		c.String(http.StatusInternalServerError, "Internal Server Error")
	default:
		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
