package response

import (
	"errors"
	"net/http"
	"strings"

	apperrors "dormigo/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorBody is the wire shape every client parses for a human-readable message.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Paged mirrors the paged collection shape the web and terminal clients
// already consume: content plus Spring-style page metadata.
type Paged struct {
	Content       interface{} `json:"content"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	Number        int         `json:"number"`
	Size          int         `json:"size"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// Paginated emits a page of items. Page numbers are zero-based.
func Paginated(c echo.Context, items interface{}, total int64, page, size int) error {
	totalPages := int(total) / size
	if int(total)%size > 0 {
		totalPages++
	}

	return c.JSON(http.StatusOK, Paged{
		Content:       items,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        page,
		Size:          size,
	})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{
			Message: appErr.Message,
			Status:  appErr.Status,
		})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Message: "An unexpected error occurred",
		Status:  http.StatusInternalServerError,
	})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = field + " is required"
		case "min":
			message = field + " must be at least " + param
		case "max":
			message = field + " must be at most " + param
		case "gte":
			message = field + " must be at least " + param
		case "oneof":
			message = field + " must be one of: " + param
		case "email":
			message = field + " must be a valid email address"
		default:
			message = field + " is invalid"
		}

		return c.JSON(http.StatusBadRequest, ErrorBody{
			Message: message,
			Status:  http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{
		Message: "Invalid input data",
		Status:  http.StatusBadRequest,
	})
}
