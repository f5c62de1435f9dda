package leads

import (
	"github.com/redhatfunding/leads-api/config/router"
	"github.com/redhatfunding/leads-api/internal/log"
	"github.com/redhatfunding/leads-api/internal/notify"
	pkgfactory "github.com/redhatfunding/leads-api/pkg/factory"
	"gorm.io/gorm"
)

type LeadServiceFactory interface {
	CreateService() LeadService
	CreateController() *router.RESTController
}

type DefaultLeadServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
	cache  pkgfactory.Cache
	cfg    ControllerConfig
}

func NewLeadServiceFactory(db *gorm.DB, logger *log.Logger, cache pkgfactory.Cache, cfg ControllerConfig) LeadServiceFactory {
	return &DefaultLeadServiceFactory{
		db:     db,
		logger: logger,
		cache:  cache,
		cfg:    cfg,
	}
}

func (f *DefaultLeadServiceFactory) CreateService() LeadService {
	repository := NewLeadRepository(f.db)
	dispatcher := notify.NewDispatcher(f.cfg.Notify, f.logger)
	return NewLeadService(f.logger, repository, dispatcher)
}

func (f *DefaultLeadServiceFactory) CreateController() *router.RESTController {
	return NewLeadsController(f.db, f.logger, f.cache, f.cfg)
}
