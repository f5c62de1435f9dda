package domain

import (
	"github.com/redhatfunding/leads-api/config"
	"github.com/redhatfunding/leads-api/domain/leads"
	"github.com/redhatfunding/leads-api/domain/monitoring"
	"github.com/redhatfunding/leads-api/internal/notify"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache))
	leadsFactory := leads.NewLeadServiceFactory(
		appConfig.DB,
		appConfig.Logger,
		appConfig.Cache,
		leads.ControllerConfig{
			APIKey: appConfig.Config.APIKey,
			Notify: notify.Config{
				SalesInbox:      appConfig.Config.SalesInbox,
				SlackWebhookURL: appConfig.Config.SlackWebhookURL,
				SMTPHost:        appConfig.Config.SMTPHost,
				SMTPPort:        appConfig.Config.SMTPPort,
				SMTPUsername:    appConfig.Config.SMTPUsername,
				SMTPPassword:    appConfig.Config.SMTPPassword,
			},
		},
	)
	appConfig.RouterService.MountController(leadsFactory.CreateController())
}
