package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"apartment-be-svc/internal/models"
	"apartment-be-svc/internal/repository"
	"apartment-be-svc/internal/service"
	"apartment-be-svc/pkg/logger"
)

// SchedulerCodeReminder tags reminder runs in log_schedullers
const SchedulerCodeReminder = "BILLING_REMINDER"

// runOrder is the order reminder buckets are processed in a scheduled run
var runOrder = []models.ReminderType{
	models.ReminderType7Days,
	models.ReminderType3Days,
	models.ReminderTypeOverdue,
}

// ReminderScheduler sends billing reminders on a cron schedule
type ReminderScheduler struct {
	reminderService  service.ReminderService
	logSchedulerRepo repository.LogSchedulerRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
	timeout          time.Duration
}

// NewReminderScheduler creates a new reminder scheduler
func NewReminderScheduler(reminderService service.ReminderService, logSchedulerRepo repository.LogSchedulerRepository, logger *logger.Logger, cronExpression string) *ReminderScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &ReminderScheduler{
		reminderService:  reminderService,
		logSchedulerRepo: logSchedulerRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
		timeout:          10 * time.Minute,
	}
}

// Start schedules the reminder job and starts the cron runner
func (s *ReminderScheduler) Start() error {
	s.logger.Info("Starting reminder scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	_, err := s.cron.AddFunc(s.cronExpression, s.sendScheduledReminders)
	if err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}

	s.logger.WithField("cron_expression", s.cronExpression).Info("Reminder job scheduled successfully")

	s.cron.Start()
	s.logger.Info("Reminder scheduler started successfully")

	return nil
}

// Stop waits for a running job to finish and stops the scheduler
func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Reminder scheduler stopped successfully")
}

func (s *ReminderScheduler) sendScheduledReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.Run(ctx)
}

// Run sends every reminder bucket once and returns the log document ID of each bucket's run
func (s *ReminderScheduler) Run(ctx context.Context) []string {
	docIDs := make([]string, 0, len(runOrder))
	for _, reminderType := range runOrder {
		docIDs = append(docIDs, s.runType(ctx, reminderType))
	}
	return docIDs
}

func (s *ReminderScheduler) runType(ctx context.Context, reminderType models.ReminderType) string {
	docID := uuid.New().String()
	log := s.logger.WithField("reminder_type", reminderType).WithField("document_id", docID)

	s.logScheduler(ctx, docID, fmt.Sprintf("Starting scheduled %s reminders", reminderType), models.SchedulerStatusStart)

	result, err := s.reminderService.SendReminders(ctx, reminderType)
	if err != nil {
		s.logScheduler(ctx, docID, fmt.Sprintf("Failed to send %s reminders: %v", reminderType, err), models.SchedulerStatusFailed)
		log.WithError(err).Error("Scheduled reminders failed")
		return docID
	}

	status := models.SchedulerStatusSuccess
	if result.FailedCount > 0 {
		status = models.SchedulerStatusFailed
	}

	responseJSON, _ := json.Marshal(result)
	s.logScheduler(ctx, docID, fmt.Sprintf("Reminders processed: %s", string(responseJSON)), status)

	log.WithFields(map[string]interface{}{
		"sent":   result.SentCount,
		"failed": result.FailedCount,
	}).Info("Scheduled reminders completed")

	return docID
}

// logScheduler creates a new log entry in the database
func (s *ReminderScheduler) logScheduler(ctx context.Context, documentID, message, status string) {
	entry := &models.LogSchedullers{
		DocumentID:       documentID,
		SchedullerCode:   SchedulerCodeReminder,
		Message:          message,
		StatusScheduller: status,
	}

	if err := s.logSchedulerRepo.CreateLogScheduler(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
	}
}
