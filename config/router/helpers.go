package router

import (
	"net/http"

	"github.com/redhatfunding/leads-api/internal/log"
	apperrors "github.com/redhatfunding/leads-api/pkg/errors"
)

func GetLogger(ctx *RequestContext) *log.Logger {
	if logger := ctx.Request.Context().Value(log.LoggerKeyForContext); logger != nil {
		if l, ok := logger.(*log.Logger); ok {
			return l
		}
	}

	baseLogger := log.NewLoggerWithJSONOutput()
	return baseLogger.WithCorrelationID(ctx.Request.Context())
}

func OKResult(data any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		Data:       data,
	}
}

func CreatedResult(data any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusCreated,
		Data:       data,
	}
}

func ErrorResult(statusCode int, code, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// FromError maps a service error onto the wire envelope.
func FromError(err error) *ServiceResult {
	return ErrorResult(
		apperrors.HTTPStatusCode(err),
		apperrors.WireCode(err),
		apperrors.GetHumanReadableMessage(err),
	)
}

func BadRequestResult(message string) *ServiceResult {
	return ErrorResult(http.StatusBadRequest, apperrors.CodeBadRequest, message)
}

// ValidationErrorResult lists the offending fields alongside the envelope.
func ValidationErrorResult(message string, fields any) *ServiceResult {
	result := ErrorResult(http.StatusUnprocessableEntity, apperrors.CodeValidation, message)
	result.Fields = fields
	return result
}

func UnauthorizedResult(message string) *ServiceResult {
	return ErrorResult(http.StatusUnauthorized, apperrors.CodeUnauthorized, message)
}

func NotFoundResult(message string) *ServiceResult {
	return ErrorResult(http.StatusNotFound, apperrors.CodeNotFound, message)
}

func TooManyRequestsResult() *ServiceResult {
	return ErrorResult(http.StatusTooManyRequests, apperrors.CodeRateLimited, "Too many requests")
}

func InternalServerErrorResult(message string) *ServiceResult {
	return ErrorResult(http.StatusInternalServerError, apperrors.CodeInternalError, message)
}
