// Package app wires configuration, storage and services into one container shared by the server and the CLI.
package app

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"apartment-be-svc/internal/config"
	"apartment-be-svc/internal/repository"
	"apartment-be-svc/internal/scheduler"
	"apartment-be-svc/internal/service"
	"apartment-be-svc/pkg/logger"
	"apartment-be-svc/pkg/mailer"
	"apartment-be-svc/pkg/utils"
)

// Services holds every service built from one configuration
type Services struct {
	Billing   service.BillingService
	Reminder  service.ReminderService
	Dashboard service.DashboardService
	Scheduler *scheduler.ReminderScheduler
}

// NewServices builds repositories and services on db. sender may be nil to use SMTP from cfg.
func NewServices(cfg *config.Config, db *gorm.DB, sender mailer.Sender, log *logger.Logger) (*Services, error) {
	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.App.Timezone, err)
	}

	if sender == nil {
		sender = mailer.NewSMTPSender(mailer.Config{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
			FromName: cfg.Mail.FromName,
		})
	}

	validator := utils.NewValidator(cfg.App.Locale)

	// Initialize repositories
	billingRepo := repository.NewBillingRepository(db)
	userRepo := repository.NewUserRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	logSchedulerRepo := repository.NewLogSchedulerRepository(db)

	// Initialize services
	billingService := service.NewBillingService(billingRepo, service.BillingSettings{
		RentPrice: cfg.Billing.RentPrice,
		RentTax:   cfg.Billing.RentTax,
		DueDays:   cfg.Billing.DueDays,
		Location:  location,
		Now:       time.Now,
	}, validator, log)

	dispatcher := service.NewReminderDispatcher(sender, service.ReminderDispatcherConfig{
		Locale:         cfg.App.Locale,
		CurrencySymbol: cfg.App.CurrencySymbol,
		BaseURL:        cfg.App.BaseURL,
	}, log)
	reminderService := service.NewReminderService(billingRepo, userRepo, dispatcher, validator, location, time.Now, log)
	dashboardService := service.NewDashboardService(dashboardRepo, validator, location, time.Now, log)

	return &Services{
		Billing:   billingService,
		Reminder:  reminderService,
		Dashboard: dashboardService,
		Scheduler: scheduler.NewReminderScheduler(reminderService, logSchedulerRepo, log, cfg.Scheduler.ReminderCronExpression),
	}, nil
}
