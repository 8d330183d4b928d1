package service

import (
	"context"
	"testing"

	"github.com/renterra/rental-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandlordDashboard_Empty(t *testing.T) {
	f := newFixture(t)
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)

	view, err := f.dashboardSvc.Landlord(context.Background(), landlord)
	require.NoError(t, err)
	assert.EqualValues(t, 0, view.TotalProperties)
	assert.Equal(t, 0.0, view.OccupancyRate)
	assert.Equal(t, 0.0, view.MonthlyIncome)
	assert.EqualValues(t, 0, view.PendingApplications)
}

func TestLandlordDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	occupied := f.newProperty(t, landlord, "Occupied Flat", 10000)
	f.newProperty(t, landlord, "Vacant Flat", 12000)
	booking := f.newApprovedBooking(t, tenant, occupied)

	_, err := f.paymentSvc.Record(ctx, tenant, booking.ID)
	require.NoError(t, err)
	_, err = f.paymentSvc.Record(ctx, tenant, booking.ID)
	require.NoError(t, err)
	_, err = f.applicationSvc.Submit(ctx, tenant, occupied.ID, "")
	require.NoError(t, err)

	view, err := f.dashboardSvc.Landlord(ctx, landlord)
	require.NoError(t, err)
	assert.EqualValues(t, 2, view.TotalProperties)
	assert.Equal(t, 50.0, view.OccupancyRate)
	assert.Equal(t, 20000.0, view.MonthlyIncome)
	assert.EqualValues(t, 1, view.PendingApplications)
	assert.Len(t, view.RecentApplications, 1)
	assert.Len(t, view.RecentPayments, 2)
}

func TestLandlordDashboard_TenantForbidden(t *testing.T) {
	f := newFixture(t)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)

	_, err := f.dashboardSvc.Landlord(context.Background(), tenant)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTenantDashboard_NoBooking(t *testing.T) {
	f := newFixture(t)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)

	view, err := f.dashboardSvc.Tenant(context.Background(), tenant)
	require.NoError(t, err)
	assert.Nil(t, view.ActiveBooking)
	assert.Equal(t, 0.0, view.MonthlyRent)
	assert.Equal(t, 0.0, view.TotalSpent)
}

func TestTenantDashboard_PendingFallback(t *testing.T) {
	f := newFixture(t)
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	property := f.newProperty(t, landlord, "Flat", 7000)
	pending := f.newBooking(t, tenant, property, models.BookingPending)

	view, err := f.dashboardSvc.Tenant(context.Background(), tenant)
	require.NoError(t, err)
	require.NotNil(t, view.ActiveBooking)
	assert.Equal(t, pending.ID, view.ActiveBooking.ID)
	assert.Equal(t, property.Rent, view.MonthlyRent)
}

func TestTenantDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	property := f.newProperty(t, landlord, "Flat", 7000)
	other := f.newProperty(t, landlord, "Other Flat", 9000)
	f.newBooking(t, tenant, other, models.BookingPending)
	booking := f.newApprovedBooking(t, tenant, property)

	_, err := f.paymentSvc.Record(ctx, tenant, booking.ID)
	require.NoError(t, err)
	_, err = f.applicationSvc.Submit(ctx, tenant, other.ID, "")
	require.NoError(t, err)
	_, err = f.maintenanceSvc.File(ctx, tenant, TicketInput{Title: "Creaky door"})
	require.NoError(t, err)

	view, err := f.dashboardSvc.Tenant(ctx, tenant)
	require.NoError(t, err)
	require.NotNil(t, view.ActiveBooking)
	// The approved booking wins over the pending one.
	assert.Equal(t, booking.ID, view.ActiveBooking.ID)
	assert.Equal(t, 7000.0, view.MonthlyRent)
	assert.Equal(t, 7000.0, view.TotalSpent)
	assert.EqualValues(t, 1, view.PendingApplications)
	assert.EqualValues(t, 1, view.MaintenanceTickets)
	assert.Len(t, view.RecentPayments, 1)
}
