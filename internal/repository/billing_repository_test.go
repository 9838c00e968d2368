package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"apartment-be-svc/internal/database/dbtest"
	"apartment-be-svc/internal/models"
)

func TestBillingRepository_LockResidentsWithApartment(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewBillingRepository(db)
	ctx := context.Background()

	a := dbtest.SeedResident(t, db, "ana", true)
	dbtest.SeedResident(t, db, "budi", false)
	c := dbtest.SeedResident(t, db, "citra", true)

	var got []*models.User
	err := repo.RunBatch(ctx, func(tx BillingRepository) error {
		var err error
		got, err = tx.LockResidentsWithApartment(ctx)
		return err
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, c.ID, got[1].ID)
}

func TestBillingRepository_UpsertService(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewBillingRepository(db)
	ctx := context.Background()

	created, err := repo.UpsertService(ctx, "cleaning", decimal.NewFromInt(50000), decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	_, err = uuid.Parse(created.DocumentID)
	assert.NoError(t, err)

	updated, err := repo.UpsertService(ctx, "cleaning", decimal.NewFromInt(75000), decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(75000)))

	var stored models.Service
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.True(t, stored.Price.Equal(decimal.NewFromInt(75000)))

	var n int64
	require.NoError(t, db.Model(&models.Service{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestBillingRepository_CreateAndLoadBillings(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewBillingRepository(db)
	ctx := context.Background()
	u := dbtest.SeedResident(t, db, "ana", true)

	b := &models.Billing{
		DocumentID:    uuid.New().String(),
		UserID:        u.ID,
		DueDate:       dbtest.Today.AddDate(0, 0, 10),
		BillingStatus: models.BillingStatusUnpaid,
		CreatedAt:     dbtest.Today,
		Items: []models.BillingItem{
			{ServiceID: 1, Name: "rent", Price: decimal.NewFromInt(1000), Tax: decimal.NewFromInt(10)},
			{ServiceID: 2, Name: "parking", Price: decimal.NewFromInt(200), Tax: decimal.Zero},
		},
	}
	require.NoError(t, repo.CreateBillings(ctx, []*models.Billing{b}))
	require.NotZero(t, b.ID)

	got, err := repo.GetBillingsByIDs(ctx, []uint{b.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Items, 2)
	assert.True(t, got[0].Total().Equal(decimal.NewFromInt(1300)))
	assert.True(t, got[0].DueDate.Equal(dbtest.Today.AddDate(0, 0, 10)))
}

func TestBillingRepository_GetLatestBillingPerUser(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewBillingRepository(db)
	ctx := context.Background()

	a := dbtest.SeedResident(t, db, "ana", true)
	b := dbtest.SeedResident(t, db, "budi", true)
	dbtest.SeedResident(t, db, "citra", true)

	dbtest.SeedBilling(t, db, a.ID, dbtest.Today, dbtest.Today.Add(-48*time.Hour), models.BillingStatusUnpaid, 100)
	aLatest := dbtest.SeedBilling(t, db, a.ID, dbtest.Today, dbtest.Today.Add(-time.Hour), models.BillingStatusUnpaid, 100)
	dbtest.SeedBilling(t, db, b.ID, dbtest.Today, dbtest.Today, models.BillingStatusPaid, 100)
	// same creation time: the higher id wins
	bLatest := dbtest.SeedBilling(t, db, b.ID, dbtest.Today, dbtest.Today, models.BillingStatusUnpaid, 100)

	latest, err := repo.GetLatestBillingPerUser(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, aLatest.ID, latest[0].ID)
	assert.Equal(t, bLatest.ID, latest[1].ID)
}

func TestBillingRepository_DeleteBillings(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewBillingRepository(db)
	ctx := context.Background()

	u := dbtest.SeedResident(t, db, "ana", true)
	keep := dbtest.SeedBilling(t, db, u.ID, dbtest.Today, dbtest.Today, models.BillingStatusUnpaid, 100)
	drop := dbtest.SeedBilling(t, db, u.ID, dbtest.Today, dbtest.Today, models.BillingStatusUnpaid, 100)

	n, err := repo.DeleteBillings(ctx, []uint{drop.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, int64(1), dbtest.CountBillings(t, db))

	var items int64
	require.NoError(t, db.Model(&models.BillingItem{}).Where("billing_id = ?", drop.ID).Count(&items).Error)
	assert.Zero(t, items)
	require.NoError(t, db.Model(&models.BillingItem{}).Where("billing_id = ?", keep.ID).Count(&items).Error)
	assert.Equal(t, int64(1), items)

	n, err = repo.DeleteBillings(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBillingRepository_MarkBillingsPaid(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewBillingRepository(db)
	ctx := context.Background()

	u := dbtest.SeedResident(t, db, "ana", true)
	unpaid := dbtest.SeedBilling(t, db, u.ID, dbtest.Today, dbtest.Today, models.BillingStatusUnpaid, 100)
	paid := dbtest.SeedBilling(t, db, u.ID, dbtest.Today, dbtest.Today, models.BillingStatusPaid, 100)

	n, err := repo.MarkBillingsPaid(ctx, []uint{unpaid.ID, paid.ID}, dbtest.Today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetBillingsByIDs(ctx, []uint{unpaid.ID})
	require.NoError(t, err)
	assert.Equal(t, models.BillingStatusPaid, got[0].BillingStatus)
	require.NotNil(t, got[0].PaidAt)
}

func TestBillingRepository_FindUnpaid(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewBillingRepository(db)
	ctx := context.Background()

	a := dbtest.SeedResident(t, db, "ana", true)
	b := dbtest.SeedResident(t, db, "budi", true)

	in3 := dbtest.Today.AddDate(0, 0, 3)
	dbtest.SeedBilling(t, db, a.ID, in3, dbtest.Today, models.BillingStatusUnpaid, 100)
	dbtest.SeedBilling(t, db, a.ID, in3, dbtest.Today, models.BillingStatusPaid, 100)
	dbtest.SeedBilling(t, db, a.ID, dbtest.Today.AddDate(0, 0, 4), dbtest.Today, models.BillingStatusUnpaid, 100)
	dbtest.SeedBilling(t, db, b.ID, in3, dbtest.Today, models.BillingStatusUnpaid, 250)
	overdue2 := dbtest.SeedBilling(t, db, b.ID, dbtest.Today.AddDate(0, 0, -2), dbtest.Today, models.BillingStatusUnpaid, 100)
	overdue9 := dbtest.SeedBilling(t, db, a.ID, dbtest.Today.AddDate(0, 0, -9), dbtest.Today, models.BillingStatusUnpaid, 100)
	dbtest.SeedBilling(t, db, a.ID, dbtest.Today, dbtest.Today, models.BillingStatusUnpaid, 100)

	due, err := repo.FindUnpaidDueOn(ctx, in3, nil)
	require.NoError(t, err)
	require.Len(t, due, 2)
	for _, row := range due {
		assert.True(t, row.DueDate.Equal(in3))
		assert.Equal(t, models.BillingStatusUnpaid, row.BillingStatus)
		assert.NotEmpty(t, row.Email)
	}
	assert.True(t, due[1].Total().Equal(decimal.NewFromInt(250)))

	onlyB, err := repo.FindUnpaidDueOn(ctx, in3, &b.ID)
	require.NoError(t, err)
	require.Len(t, onlyB, 1)
	assert.Equal(t, "budi", onlyB[0].FullName)

	overdue, err := repo.FindUnpaidDueBefore(ctx, dbtest.Today, nil)
	require.NoError(t, err)
	require.Len(t, overdue, 2)
	assert.Equal(t, overdue9.ID, overdue[0].BillingID)
	assert.Equal(t, overdue2.ID, overdue[1].BillingID)

	none, err := repo.FindUnpaidDueOn(ctx, dbtest.Today.AddDate(0, 0, 30), nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBillingRepository_RunBatchRollsBack(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewBillingRepository(db)
	ctx := context.Background()
	u := dbtest.SeedResident(t, db, "ana", true)

	boom := errors.New("boom")
	err := repo.RunBatch(ctx, func(tx BillingRepository) error {
		b := &models.Billing{DocumentID: uuid.New().String(), UserID: u.ID, DueDate: dbtest.Today, BillingStatus: models.BillingStatusUnpaid}
		if err := tx.CreateBillings(ctx, []*models.Billing{b}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, dbtest.CountBillings(t, db))
}

func TestBillingRepository_RunBatchStoreFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE apartment_id IS NOT NULL ORDER BY id FOR UPDATE`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "apartment_id"}).AddRow(1, "Ana", "ana@example.com", 3))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "billings"`)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	repo := NewBillingRepository(db)
	ctx := context.Background()
	err = repo.RunBatch(ctx, func(tx BillingRepository) error {
		users, err := tx.LockResidentsWithApartment(ctx)
		if err != nil {
			return err
		}
		b := &models.Billing{DocumentID: uuid.New().String(), UserID: users[0].ID, DueDate: dbtest.Today, BillingStatus: models.BillingStatusUnpaid}
		return tx.CreateBillings(ctx, []*models.Billing{b})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillingRepository_GetLatestBillingPerUserLocksRows(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "billings" WHERE billings\.id = \(SELECT b2\.id FROM billings AS b2 WHERE b2\.user_id = billings\.user_id ORDER BY b2\.created_at DESC, b2\.id DESC LIMIT .+\) ORDER BY billings\.user_id FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "billing_status"}).AddRow(9, 1, models.BillingStatusUnpaid))

	latest, err := NewBillingRepository(db).GetLatestBillingPerUser(context.Background())
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, uint(9), latest[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
