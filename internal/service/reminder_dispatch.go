package service

import (
	"context"
	"fmt"

	"apartment-be-svc/internal/models"
	"apartment-be-svc/pkg/logger"
	"apartment-be-svc/pkg/mailer"
	"apartment-be-svc/pkg/utils"
)

// Recipient identifies the resident a reminder is addressed to
type Recipient struct {
	UserID   uint
	Email    string
	FullName string
}

// ReminderDispatcher renders and sends one reminder email per call
type ReminderDispatcher interface {
	Send(ctx context.Context, to Recipient, bills []models.BillingSummary) error
}

// ReminderDispatcherConfig holds the settings used to render reminders
type ReminderDispatcherConfig struct {
	Locale         string
	CurrencySymbol string
	BaseURL        string
}

// reminderDispatcher implements ReminderDispatcher
type reminderDispatcher struct {
	sender   mailer.Sender
	renderer *reminderRenderer
	logger   *logger.Logger
}

// NewReminderDispatcher creates a new instance of ReminderDispatcher
func NewReminderDispatcher(sender mailer.Sender, cfg ReminderDispatcherConfig, logger *logger.Logger) ReminderDispatcher {
	formatter := utils.NewFormatter(cfg.Locale, cfg.CurrencySymbol)
	return &reminderDispatcher{
		sender:   sender,
		renderer: newReminderRenderer(cfg.Locale, formatter, cfg.BaseURL),
		logger:   logger,
	}
}

// Send delivers a single email; transport failures are returned as DispatchError without retry
func (d *reminderDispatcher) Send(ctx context.Context, to Recipient, bills []models.BillingSummary) error {
	if len(bills) == 0 {
		return newNoEligibleBillingsError()
	}

	subject, html, text, err := d.renderer.render(to.FullName, bills)
	if err != nil {
		return fmt.Errorf("failed to render reminder: %w", err)
	}

	err = d.sender.Send(ctx, mailer.Message{
		To:      to.Email,
		ToName:  to.FullName,
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		d.logger.WithError(err).WithFields(map[string]interface{}{
			"user_id": to.UserID,
			"email":   to.Email,
		}).Error("Failed to send reminder email")
		return &DispatchError{Recipient: to.Email, Err: err}
	}

	d.logger.WithFields(map[string]interface{}{
		"user_id": to.UserID,
		"email":   to.Email,
		"bills":   len(bills),
		"subject": subject,
	}).Info("Reminder email sent")

	return nil
}
