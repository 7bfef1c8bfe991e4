package handler

import (
	"errors"
	"fmt"
	"strings"

	"levelup/repository"
	"levelup/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// validationFailed answers a bind error with 422 and a readable detail.
func validationFailed(c *gin.Context, err error) {
	utils.TrackError("http", "validation")
	utils.Unprocessable(c, validationDetail(err))
}

func validationDetail(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "Invalid request: " + err.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "isodate":
			msgs = append(msgs, fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field()))
		case "clock":
			msgs = append(msgs, fmt.Sprintf("%s must be a time in HH:MM format", fe.Field()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must be between 1 and 3650", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// deleteFailed maps a delete error to 404 for missing records and 500 otherwise.
func deleteFailed(c *gin.Context, err error, entity string) {
	if errors.Is(err, repository.ErrNotFound) {
		utils.NotFound(c, entity+" not found")
		return
	}
	internalError(c, err, "Failed to delete "+strings.ToLower(entity))
}

func internalError(c *gin.Context, err error, detail string) {
	utils.WithContext(c).WithError(err).WithField("path", c.FullPath()).Error(detail)
	utils.InternalError(c, detail)
}
