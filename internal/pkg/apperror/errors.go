package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// APIError is an error that carries the HTTP status it should be reported with.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Error() string {
	return a.Message
}

func (a *APIError) Code() int {
	return a.Status
}

// Extensions is surfaced in GraphQL error responses.
func (a *APIError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": a.Status}
}

// StructuredError reports per-field validation problems.
type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Error() string {
	fields := make([]string, 0, len(s.Errors))
	for field, problems := range s.Errors {
		fields = append(fields, field+": "+strings.Join(problems, ", "))
	}
	return "invalid input: " + strings.Join(fields, "; ")
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": s.Status, "fields": s.Errors}
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	ErrNotAuthenticated = NewSimple(http.StatusUnauthorized, "Not authenticated")
	ErrForbidden        = NewSimple(http.StatusForbidden, "You are not allowed to modify this resource")
	ErrNoteNotFound     = NewSimple(http.StatusNotFound, "Note not found")
	ErrUserNotFound     = NewSimple(http.StatusNotFound, "User not found")
	ErrCommentNotFound  = NewSimple(http.StatusNotFound, "Comment not found")
	ErrLinkNotFound     = NewSimple(http.StatusNotFound, "Profile link not found")
	ErrUserExists       = NewSimple(http.StatusConflict, "User already exists")
	ErrEmptySearchTerm  = NewSimple(http.StatusBadRequest, "Search term cannot be empty")
	ErrInternal         = NewSimple(http.StatusInternalServerError, "Internal server error")
)

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	problems := NewStructured(http.StatusBadRequest)
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems.Add(field, "This field is required")
		case "min":
			problems.Add(field, "Value is too short, min: "+fe.Param())
		case "max":
			problems.Add(field, "Value is too long, max: "+fe.Param())
		case "email":
			problems.Add(field, "Value must be a valid email address")
		case "url", "http_url":
			problems.Add(field, "Value must be a valid URL")
		default:
			problems.Add(field, "Invalid value provided")
		}
	}

	return problems
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	var structured *StructuredError
	if errors.As(err, &structured) {
		return structured.Status
	}
	return http.StatusInternalServerError
}
