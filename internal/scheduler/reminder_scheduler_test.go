package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apartment-be-svc/internal/database/dbtest"
	"apartment-be-svc/internal/models"
	"apartment-be-svc/internal/repository"
	"apartment-be-svc/internal/service"
	"apartment-be-svc/pkg/logger"
)

type stubReminderService struct {
	service.ReminderService
	calls   []models.ReminderType
	results map[models.ReminderType]*service.ReminderRunResult
	errs    map[models.ReminderType]error
}

func (s *stubReminderService) SendReminders(_ context.Context, t models.ReminderType) (*service.ReminderRunResult, error) {
	s.calls = append(s.calls, t)
	if err := s.errs[t]; err != nil {
		return nil, err
	}
	if r := s.results[t]; r != nil {
		return r, nil
	}
	return &service.ReminderRunResult{ReminderType: t}, nil
}

func TestReminderScheduler_RunLogsEveryBucket(t *testing.T) {
	db := dbtest.Open(t)
	logRepo := repository.NewLogSchedulerRepository(db)
	reminders := &stubReminderService{
		results: map[models.ReminderType]*service.ReminderRunResult{
			models.ReminderType3Days: {ReminderType: models.ReminderType3Days, TotalResidents: 2, SentCount: 1, FailedCount: 1},
		},
		errs: map[models.ReminderType]error{
			models.ReminderTypeOverdue: &service.StoreError{Op: "find unpaid billings", Err: errors.New("timeout")},
		},
	}
	s := NewReminderScheduler(reminders, logRepo, logger.NewNopLogger(), "0 0 8 * * *")
	ctx := context.Background()

	docIDs := s.Run(ctx)
	require.Len(t, docIDs, 3)
	assert.Equal(t, []models.ReminderType{models.ReminderType7Days, models.ReminderType3Days, models.ReminderTypeOverdue}, reminders.calls)

	want := []string{models.SchedulerStatusSuccess, models.SchedulerStatusFailed, models.SchedulerStatusFailed}
	for i, docID := range docIDs {
		logs, err := logRepo.ListByDocumentID(ctx, docID)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, models.SchedulerStatusStart, logs[0].StatusScheduller)
		assert.Equal(t, want[i], logs[1].StatusScheduller)
		assert.Equal(t, SchedulerCodeReminder, logs[1].SchedullerCode)
	}

	overdueLogs, err := logRepo.ListByDocumentID(ctx, docIDs[2])
	require.NoError(t, err)
	assert.Contains(t, overdueLogs[1].Message, "timeout")
}

func TestReminderScheduler_StartRejectsBadExpression(t *testing.T) {
	db := dbtest.Open(t)
	s := NewReminderScheduler(&stubReminderService{}, repository.NewLogSchedulerRepository(db), logger.NewNopLogger(), "every morning")

	assert.Error(t, s.Start())
}

func TestReminderScheduler_StartStop(t *testing.T) {
	db := dbtest.Open(t)
	s := NewReminderScheduler(&stubReminderService{}, repository.NewLogSchedulerRepository(db), logger.NewNopLogger(), "0 0 8 * * *")

	require.NoError(t, s.Start())
	s.Stop()
}
