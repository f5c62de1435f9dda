package router

import (
	"github.com/gin-gonic/gin"
)

type RequestContext = gin.Context

type MiddlewareFunc = gin.HandlerFunc

// ServiceResult is what every handler returns. Successful results are
// rendered as their payload alone; error results are rendered as the uniform
// {"code", "message"} envelope (plus "fields" for validation failures).
type ServiceResult struct {
	StatusCode int
	Code       string
	Message    string
	Data       any
	Fields     any
}

type HandlerFunction func(*RequestContext) *ServiceResult

type RESTController struct {
	name         string
	mountPoint   string
	handlerCount int
	prepare      func(*RouterService, *RESTController)
}

// Body returns what goes on the wire for this result.
func (result *ServiceResult) Body() any {
	if result.IsSuccess() {
		return result.Data
	}

	envelope := gin.H{
		"code":    result.Code,
		"message": result.Message,
	}
	if result.Fields != nil {
		envelope["fields"] = result.Fields
	}
	return envelope
}

func (result *ServiceResult) IsSuccess() bool {
	return result.StatusCode >= 200 && result.StatusCode < 300
}

func (result *ServiceResult) IsError() bool {
	return result.StatusCode >= 400
}
