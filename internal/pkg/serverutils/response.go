package serverutils

import (
	"errors"

	"studynotes-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response[T any] struct {
	Success bool                `json:"success"`
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    T                   `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) Response[any] {
	return Response[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

var validate = validator.New()

// ValidateRequest runs the struct's validate tags and returns a StructuredError
// describing every failing field.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	if structured := apperror.FromValidationError(err); structured != nil {
		return structured
	}
	return err
}

// ErrorHandler renders errors returned by handlers.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	var structured *apperror.StructuredError
	if errors.As(err, &structured) {
		res := ErrorResponse(structured.Status, "Invalid request")
		res.Errors = structured.Errors
		return ctx.Status(structured.Status).JSON(res)
	}

	var apiErr *apperror.APIError
	if errors.As(err, &apiErr) {
		return ctx.Status(apiErr.Status).JSON(ErrorResponse(apiErr.Status, apiErr.Message))
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
}
