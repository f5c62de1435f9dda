package monitoring

import (
	"context"
	"time"

	"github.com/redhatfunding/leads-api/config/router"
	"github.com/redhatfunding/leads-api/internal/log"
	"gorm.io/gorm"
)

type Cache interface {
	Ping(ctx context.Context) error
}

// HealthStatus is the deep-check payload served by /api/status.
type HealthStatus struct {
	Database int `json:"database"` // 1 = healthy, 0 = unhealthy
	Cache    int `json:"cache"`    // 1 = healthy, 0 = unhealthy/not configured
	Uptime   int `json:"uptime"`   // uptime in seconds
}

type MonitoringController struct {
	db        *gorm.DB
	logger    *log.Logger
	cache     Cache
	startTime time.Time
}

func NewMonitoringController(db *gorm.DB, logger *log.Logger, cache Cache) *router.RESTController {
	ctrl := &MonitoringController{
		db:        db,
		logger:    logger,
		cache:     cache,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/api",
		func(routerService *router.RouterService, controller *router.RESTController) {
			routerService.AddGetHandler(controller, nil, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(c)
			})

			routerService.AddGetHandler(controller, nil, "status", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.deepStatus(routerService, c)
			})
		},
	)
}

// healthCheck is the liveness probe the front end and load balancer poll.
func (ctrl *MonitoringController) healthCheck(c *router.RequestContext) *router.ServiceResult {
	return router.OKResult(map[string]string{"status": "ok"})
}

// deepStatus reports per-dependency connectivity for operators.
func (ctrl *MonitoringController) deepStatus(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Info("Status endpoint called")

	status := HealthStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	ctx := c.Request.Context()

	if ctrl.checkDatabase(ctx) {
		status.Database = 1
	} else {
		logger.Error("Database health check failed")
	}

	if ctrl.cache != nil {
		if ctrl.cache.Ping(ctx) == nil {
			status.Cache = 1
		} else {
			logger.Error("Cache health check failed")
		}
	}

	return router.OKResult(status)
}

func (ctrl *MonitoringController) checkDatabase(ctx context.Context) bool {
	sqlDB, err := ctrl.db.DB()
	if err != nil {
		return false
	}

	return sqlDB.PingContext(ctx) == nil
}
