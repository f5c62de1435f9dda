package leads

import (
	"github.com/redhatfunding/leads-api/config/router"
	"github.com/redhatfunding/leads-api/internal/log"
	"github.com/redhatfunding/leads-api/internal/notify"
	apperrors "github.com/redhatfunding/leads-api/pkg/errors"
	"github.com/redhatfunding/leads-api/pkg/factory"
	"gorm.io/gorm"
)

// ControllerConfig carries the pieces the lead endpoints need from the
// application config: the listing API key and the notification transports.
type ControllerConfig struct {
	APIKey string
	Notify notify.Config
}

func NewLeadsController(
	db *gorm.DB,
	logger *log.Logger,
	cache factory.Cache,
	cfg ControllerConfig,
) *router.RESTController {

	return router.NewRESTController(
		"LeadsController",
		"/api/leads",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewLeadRepository(db)
			dispatcher := notify.NewDispatcher(cfg.Notify, logger)
			service := NewLeadService(logger, repository, dispatcher)

			// The unauthenticated creation endpoint gets the configured
			// per-client limit; Redis-backed when Redis is available so the
			// window holds across instances.
			requests, window := rs.GetDefaultRateLimitConfig()
			creationLimiter := factory.NewDefaultRateLimiterFactory(requests, window, cache, logger).CreateRateLimiter()

			rs.AddPostHandler(c, creationLimiter, "", createLeadHandler(service))
			rs.AddGetHandler(c, nil, "", listLeadsHandler(service), apiKeyMiddleware(cfg.APIKey, logger))
		},
	)
}

// apiKeyMiddleware gates the listing endpoint on the shared X-API-Key secret.
func apiKeyMiddleware(apiKey string, logger *log.Logger) router.MiddlewareFunc {
	return func(c *router.RequestContext) {
		provided := c.GetHeader("X-API-Key")
		if provided == "" || provided != apiKey {
			logger.WithCorrelationID(c.Request.Context()).Warn("Rejected leads listing request with invalid API key")
			result := router.UnauthorizedResult("Invalid API key")
			c.AbortWithStatusJSON(result.StatusCode, result.Body())
			return
		}
		c.Next()
	}
}

func createLeadHandler(service LeadService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateLeadRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind lead submission", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.ValidationErrorResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body")
		}

		meta := RequestMeta{
			ClientIP:  ctx.ClientIP(),
			UserAgent: ctx.GetHeader("User-Agent"),
		}

		response, err := service.CreateLead(ctx.Request.Context(), &req, meta)
		if err != nil {
			return router.FromError(err)
		}

		return router.CreatedResult(response)
	}
}

func listLeadsHandler(service LeadService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var query ListLeadsQuery

		if err := ctx.ShouldBindQuery(&query); err != nil {
			logger.Error("Failed to bind leads listing query", "error", err)
			return router.BadRequestResult("Invalid query parameters")
		}

		response, err := service.ListLeads(ctx.Request.Context(), &query)
		if err != nil {
			return router.FromError(err)
		}

		return router.OKResult(response)
	}
}
