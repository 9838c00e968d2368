package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apartment-be-svc/internal/database/dbtest"
	"apartment-be-svc/internal/models"
	"apartment-be-svc/internal/models/request"
)

func seedBuilding(t *testing.T, f *fixture, assigned, unassigned int) []*models.User {
	t.Helper()

	var residents []*models.User
	for i := 0; i < assigned; i++ {
		residents = append(residents, dbtest.SeedResident(t, f.db, fmt.Sprintf("tenant%02d", i), true))
	}
	for i := 0; i < unassigned; i++ {
		dbtest.SeedResident(t, f.db, fmt.Sprintf("guest%02d", i), false)
	}
	return residents
}

func loadBillings(t *testing.T, f *fixture) []models.Billing {
	t.Helper()

	var billings []models.Billing
	require.NoError(t, f.db.Preload("Items").Order("id").Find(&billings).Error)
	return billings
}

func TestBillingService_CollectRent(t *testing.T) {
	f := newFixture(t)
	residents := seedBuilding(t, f, 7, 3)

	result, err := f.billing.Collect(context.Background(), request.BulkCollectRequest{Type: request.FeeTypeRent})
	require.NoError(t, err)

	assert.Equal(t, 7, result.TotalResidents)
	assert.Equal(t, 7, result.CreatedCount)
	assert.Len(t, result.BillingIDs, 7)
	assert.Equal(t, models.ServiceNameRent, result.ChargeName)
	assert.Equal(t, "2026-10-29", result.DueDate)

	assigned := map[uint]bool{}
	for _, r := range residents {
		assigned[r.ID] = true
	}

	billings := loadBillings(t, f)
	require.Len(t, billings, 7)
	for _, b := range billings {
		assert.True(t, assigned[b.UserID], "billed a resident without an apartment")
		assert.Equal(t, models.BillingStatusUnpaid, b.BillingStatus)
		assert.True(t, b.DueDate.Equal(dbtest.Today.AddDate(0, 0, 10)))
		require.Len(t, b.Items, 1)
		assert.Equal(t, models.ServiceNameRent, b.Items[0].Name)
		assert.True(t, b.Total().Equal(decimal.NewFromInt(1500000)))
	}
}

func TestBillingService_CollectOther(t *testing.T) {
	f := newFixture(t)
	seedBuilding(t, f, 2, 0)

	result, err := f.billing.Collect(context.Background(), request.BulkCollectRequest{
		Type:  request.FeeTypeOther,
		Name:  " cleaning ",
		Price: decimalPtr(50000),
		Tax:   decimalPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)
	assert.Equal(t, "cleaning", result.ChargeName)

	for _, b := range loadBillings(t, f) {
		require.Len(t, b.Items, 1)
		assert.Equal(t, "cleaning", b.Items[0].Name)
		assert.True(t, b.Total().Equal(decimal.NewFromInt(55000)), b.Total().String())
	}

	var svc models.Service
	require.NoError(t, f.db.Where("name = ?", "cleaning").First(&svc).Error)
	assert.True(t, svc.Price.Equal(decimal.NewFromInt(50000)))
}

func TestBillingService_CollectAcceptsCentPrecision(t *testing.T) {
	f := newFixture(t)
	seedBuilding(t, f, 1, 0)

	result, err := f.billing.Collect(context.Background(), request.BulkCollectRequest{
		Type:  request.FeeTypeOther,
		Name:  "parking",
		Price: decimalStrPtr("9999999999999.99"),
		Tax:   decimalStrPtr("11.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.CreatedCount)
	assert.Equal(t, "9999999999999.99", result.UnitPrice.String())
}

func TestBillingService_CollectRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		req   request.BulkCollectRequest
		field string
	}{
		{
			name:  "negative price",
			req:   request.BulkCollectRequest{Type: request.FeeTypeOther, Name: "cleaning", Price: decimalPtr(-1)},
			field: "price",
		},
		{
			name:  "missing price",
			req:   request.BulkCollectRequest{Type: request.FeeTypeOther, Name: "cleaning"},
			field: "price",
		},
		{
			name:  "empty name",
			req:   request.BulkCollectRequest{Type: request.FeeTypeOther, Price: decimalPtr(10)},
			field: "name",
		},
		{
			name:  "reserved name",
			req:   request.BulkCollectRequest{Type: request.FeeTypeOther, Name: "Rent", Price: decimalPtr(10)},
			field: "name",
		},
		{
			name:  "tax above hundred",
			req:   request.BulkCollectRequest{Type: request.FeeTypeOther, Name: "parking", Price: decimalPtr(10), Tax: decimalPtr(101)},
			field: "tax",
		},
		{
			name:  "price beyond column range",
			req:   request.BulkCollectRequest{Type: request.FeeTypeOther, Name: "parking", Price: decimalStrPtr("100000000000000")},
			field: "price",
		},
		{
			name:  "price with sub-cent fraction",
			req:   request.BulkCollectRequest{Type: request.FeeTypeOther, Name: "parking", Price: decimalStrPtr("0.005")},
			field: "price",
		},
		{
			name:  "tax with three decimals",
			req:   request.BulkCollectRequest{Type: request.FeeTypeOther, Name: "parking", Price: decimalPtr(10), Tax: decimalStrPtr("10.125")},
			field: "tax",
		},
		{
			name:  "unknown type",
			req:   request.BulkCollectRequest{Type: "water"},
			field: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			seedBuilding(t, f, 3, 0)

			result, err := f.billing.Collect(context.Background(), tt.req)
			assert.Nil(t, result)

			var valErr *ValidationError
			require.True(t, errors.As(err, &valErr), "got %v", err)
			assert.Equal(t, "validation failed", valErr.Message)
			assert.Contains(t, valErr.Fields, tt.field)
			assert.Zero(t, dbtest.CountBillings(t, f.db))
		})
	}
}

func TestBillingService_CollectWithoutResidents(t *testing.T) {
	f := newFixture(t)
	seedBuilding(t, f, 0, 2)

	result, err := f.billing.Collect(context.Background(), request.BulkCollectRequest{Type: request.FeeTypeRent})
	require.NoError(t, err)
	assert.Zero(t, result.CreatedCount)
	assert.Empty(t, result.BillingIDs)
	assert.Zero(t, dbtest.CountBillings(t, f.db))
}

func TestBillingService_CollectRollsBackOnStoreFailure(t *testing.T) {
	f := newFixture(t)
	f = newFixtureWithRepo(t, f.db, &failingRepo{BillingRepository: f.repo, failCreate: true})
	seedBuilding(t, f, 4, 0)

	result, err := f.billing.Collect(context.Background(), request.BulkCollectRequest{Type: request.FeeTypeRent})
	assert.Nil(t, result)

	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr), "got %v", err)
	assert.Equal(t, "create billings", storeErr.Op)
	assert.ErrorIs(t, err, errStoreDown)

	assert.Zero(t, dbtest.CountBillings(t, f.db))
	var services int64
	require.NoError(t, f.db.Model(&models.Service{}).Count(&services).Error)
	assert.Zero(t, services)
}

func TestBillingService_RollbackRemovesLatestRun(t *testing.T) {
	f := newFixture(t)
	seedBuilding(t, f, 7, 3)
	ctx := context.Background()

	first, err := f.billing.Collect(ctx, request.BulkCollectRequest{Type: request.FeeTypeRent})
	require.NoError(t, err)
	second, err := f.billing.Collect(ctx, request.BulkCollectRequest{Type: request.FeeTypeRent})
	require.NoError(t, err)
	require.Equal(t, int64(14), dbtest.CountBillings(t, f.db))

	result, err := f.billing.Rollback(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, result.DeletedCount)
	assert.ElementsMatch(t, second.BillingIDs, result.BillingIDs)

	var remaining []uint
	for _, b := range loadBillings(t, f) {
		remaining = append(remaining, b.ID)
	}
	assert.ElementsMatch(t, first.BillingIDs, remaining)

	var orphanItems int64
	require.NoError(t, f.db.Model(&models.BillingItem{}).Where("billing_id IN ?", second.BillingIDs).Count(&orphanItems).Error)
	assert.Zero(t, orphanItems)
}

func TestBillingService_RollbackAtMostOnePerResident(t *testing.T) {
	f := newFixture(t)
	a := dbtest.SeedResident(t, f.db, "ana", true)
	b := dbtest.SeedResident(t, f.db, "budi", true)

	dbtest.SeedBilling(t, f.db, a.ID, dbtest.Today, dbtest.Today.AddDate(0, -2, 0), models.BillingStatusPaid, 100)
	aLatest := dbtest.SeedBilling(t, f.db, a.ID, dbtest.Today, dbtest.Today.AddDate(0, -1, 0), models.BillingStatusUnpaid, 100)
	bOnly := dbtest.SeedBilling(t, f.db, b.ID, dbtest.Today, dbtest.Today.AddDate(0, -3, 0), models.BillingStatusUnpaid, 100)

	result, err := f.billing.Rollback(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.DeletedCount)
	assert.ElementsMatch(t, []uint{aLatest.ID, bOnly.ID}, result.BillingIDs)
	assert.Equal(t, int64(1), dbtest.CountBillings(t, f.db))
}

func TestBillingService_RollbackAbortsWhenRowsVanish(t *testing.T) {
	f := newFixture(t)
	f = newFixtureWithRepo(t, f.db, &failingRepo{BillingRepository: f.repo, shortDelete: true})
	seedBuilding(t, f, 3, 0)

	ctx := context.Background()
	_, err := f.billing.Collect(ctx, request.BulkCollectRequest{Type: request.FeeTypeRent})
	require.NoError(t, err)

	result, err := f.billing.Rollback(ctx)
	assert.Nil(t, result)

	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr), "got %v", err)
	assert.Equal(t, "delete billings", storeErr.Op)
	assert.ErrorIs(t, err, ErrRollbackConflict)
	assert.Equal(t, int64(3), dbtest.CountBillings(t, f.db))
}

func TestBillingService_RollbackEmptyStore(t *testing.T) {
	f := newFixture(t)

	result, err := f.billing.Rollback(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.DeletedCount)
	assert.Empty(t, result.BillingIDs)
}

func TestBillingService_ConfirmPayment(t *testing.T) {
	f := newFixture(t)
	u := dbtest.SeedResident(t, f.db, "ana", true)
	unpaid := dbtest.SeedBilling(t, f.db, u.ID, dbtest.Today, dbtest.Today, models.BillingStatusUnpaid, 100)
	paid := dbtest.SeedBilling(t, f.db, u.ID, dbtest.Today, dbtest.Today, models.BillingStatusPaid, 100)
	ctx := context.Background()

	result, err := f.billing.ConfirmPayment(ctx, []uint{unpaid.ID, paid.ID, unpaid.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Requested)
	assert.Equal(t, 1, result.PaidCount)
	assert.Equal(t, 1, result.AlreadyPaid)

	var stored models.Billing
	require.NoError(t, f.db.First(&stored, unpaid.ID).Error)
	assert.Equal(t, models.BillingStatusPaid, stored.BillingStatus)
	require.NotNil(t, stored.PaidAt)

	_, err = f.billing.ConfirmPayment(ctx, []uint{unpaid.ID, 9999})
	var nfErr *NotFoundError
	assert.True(t, errors.As(err, &nfErr), "got %v", err)

	_, err = f.billing.ConfirmPayment(ctx, nil)
	var valErr *ValidationError
	assert.True(t, errors.As(err, &valErr), "got %v", err)
}
