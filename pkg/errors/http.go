package errors

import (
	"errors"
)

func HTTPStatusCode(err error) int {
	if err == nil {
		return StatusInternalServerError
	}

	switch GetErrorType(err) {
	case ErrorTypeNotFound:
		return StatusNotFound
	case ErrorTypeInvalidRequest:
		return StatusBadRequest
	case ErrorTypeValidation:
		return StatusUnprocessableEntity
	case ErrorTypeConflict:
		return StatusConflict
	case ErrorTypeUnauthorized:
		return StatusUnauthorized
	case ErrorTypeForbidden:
		return StatusForbidden
	case ErrorTypeTooManyRequests:
		return StatusTooManyRequests
	case ErrorTypeRequestTimeout:
		return StatusRequestTimeout
	case ErrorTypeMethodNotAllowed:
		return StatusMethodNotAllowed
	default:
		return StatusInternalServerError
	}
}

// WireCode maps an error to the stable string carried in the error envelope.
func WireCode(err error) string {
	if err == nil {
		return CodeInternalError
	}

	switch GetErrorType(err) {
	case ErrorTypeNotFound:
		return CodeNotFound
	case ErrorTypeInvalidRequest:
		return CodeBadRequest
	case ErrorTypeValidation:
		return CodeValidation
	case ErrorTypeConflict:
		return CodeConflict
	case ErrorTypeUnauthorized:
		return CodeUnauthorized
	case ErrorTypeForbidden:
		return CodeForbidden
	case ErrorTypeTooManyRequests:
		return CodeRateLimited
	case ErrorTypeRequestTimeout:
		return CodeRequestTimeout
	case ErrorTypeMethodNotAllowed:
		return CodeNotAllowed
	default:
		return CodeInternalError
	}
}

func GetHumanReadableMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	// SECURITY: avoid leaking internal error strings (DB errors, stack messages, etc.)
	return "An unexpected error occurred"
}
