package service

import (
	"context"
	"testing"
	"time"

	"github.com/renterra/rental-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	property := f.newProperty(t, landlord, "Lakeside Apartment", 12000)

	application, err := f.applicationSvc.Submit(ctx, tenant, property.ID, "interested")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.Equal(t, tenant.ID, application.TenantID)
	assert.Equal(t, property.ID, application.PropertyID)
}

func TestSubmitApplication_LandlordForbidden(t *testing.T) {
	f := newFixture(t)
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	property := f.newProperty(t, landlord, "Lakeside Apartment", 12000)

	_, err := f.applicationSvc.Submit(context.Background(), landlord, property.ID, "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSubmitApplication_UnavailableProperty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	property := f.newProperty(t, landlord, "Lakeside Apartment", 12000)
	require.NoError(t, f.db.Model(property).Update("available", false).Error)

	_, err := f.applicationSvc.Submit(ctx, tenant, property.ID, "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApproveApplication_SpawnsYearLongBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	property := f.newProperty(t, landlord, "Lakeside Apartment", 12000)

	application, err := f.applicationSvc.Submit(ctx, tenant, property.ID, "")
	require.NoError(t, err)

	booking, err := f.applicationSvc.Approve(ctx, landlord, application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingApproved, booking.Status)
	require.NotNil(t, booking.ApplicationID)
	assert.Equal(t, application.ID, *booking.ApplicationID)
	assert.Equal(t, 365*24*time.Hour, booking.EndDate.Sub(booking.StartDate))

	var stored models.Application
	require.NoError(t, f.db.First(&stored, application.ID).Error)
	assert.Equal(t, models.ApplicationApproved, stored.Status)
}

func TestApproveApplication_NotOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	other := f.newUser(t, "other@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	property := f.newProperty(t, landlord, "Lakeside Apartment", 12000)

	application, err := f.applicationSvc.Submit(ctx, tenant, property.ID, "")
	require.NoError(t, err)

	_, err = f.applicationSvc.Approve(ctx, other, application.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApproveApplication_OnlyFirstDeciderWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	property := f.newProperty(t, landlord, "Lakeside Apartment", 12000)

	application, err := f.applicationSvc.Submit(ctx, tenant, property.ID, "")
	require.NoError(t, err)

	_, err = f.applicationSvc.Approve(ctx, landlord, application.ID)
	require.NoError(t, err)

	_, err = f.applicationSvc.Approve(ctx, landlord, application.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Exactly one booking exists for the application.
	var count int64
	require.NoError(t, f.db.Model(&models.Booking{}).Where("application_id = ?", application.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRejectApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	property := f.newProperty(t, landlord, "Lakeside Apartment", 12000)

	application, err := f.applicationSvc.Submit(ctx, tenant, property.ID, "")
	require.NoError(t, err)

	rejected, err := f.applicationSvc.Reject(ctx, landlord, application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationRejected, rejected.Status)

	// No booking gets created on rejection.
	var count int64
	require.NoError(t, f.db.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCancelApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	stranger := f.newUser(t, "stranger@example.com", models.RoleTenant)
	property := f.newProperty(t, landlord, "Lakeside Apartment", 12000)

	application, err := f.applicationSvc.Submit(ctx, tenant, property.ID, "")
	require.NoError(t, err)

	_, err = f.applicationSvc.Cancel(ctx, stranger, application.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	cancelled, err := f.applicationSvc.Cancel(ctx, tenant, application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationCancelled, cancelled.Status)
}

func TestCancelApplication_RejectedIsTerminal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	property := f.newProperty(t, landlord, "Lakeside Apartment", 12000)

	application, err := f.applicationSvc.Submit(ctx, tenant, property.ID, "")
	require.NoError(t, err)
	_, err = f.applicationSvc.Reject(ctx, landlord, application.ID)
	require.NoError(t, err)

	_, err = f.applicationSvc.Cancel(ctx, tenant, application.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestListApplications_ScopedByRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	other := f.newUser(t, "other@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	mine := f.newProperty(t, landlord, "Mine", 10000)
	theirs := f.newProperty(t, other, "Theirs", 11000)

	_, err := f.applicationSvc.Submit(ctx, tenant, mine.ID, "")
	require.NoError(t, err)
	_, err = f.applicationSvc.Submit(ctx, tenant, theirs.ID, "")
	require.NoError(t, err)

	forLandlord, err := f.applicationSvc.List(ctx, landlord)
	require.NoError(t, err)
	require.Len(t, forLandlord, 1)
	assert.Equal(t, mine.ID, forLandlord[0].PropertyID)

	forTenant, err := f.applicationSvc.List(ctx, tenant)
	require.NoError(t, err)
	assert.Len(t, forTenant, 2)
}
