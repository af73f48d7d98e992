package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"interviewhub/api-gateway/internal/apperrors"
)

// RespondWithError sends a JSON error response.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// RespondWithAppError maps an application error kind to its HTTP status and
// sends the error envelope.
func RespondWithAppError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		status = fiber.StatusBadRequest
	case apperrors.KindNotFound:
		status = fiber.StatusNotFound
	case apperrors.KindInvalidState, apperrors.KindNotReady:
		status = fiber.StatusConflict
	}

	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Error()
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			message = fmt.Sprintf("%s: %s", appErr.Message, strings.Join(FormatValidationErrors(verr), "; "))
		}
	}
	return RespondWithError(c, status, message)
}

// FormatValidationErrors formats validation errors from validator/v10.
func FormatValidationErrors(err error) []string {
	var errs []string
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				element := fmt.Sprintf("Field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
				if fe.Param() != "" {
					element = fmt.Sprintf("%s (value: %s)", element, fe.Param())
				}
				errs = append(errs, element)
			}
		}
	}
	return errs
}

// SanitizeInput trims surrounding whitespace from user-supplied strings.
func SanitizeInput(input string) string {
	return strings.TrimSpace(input)
}
