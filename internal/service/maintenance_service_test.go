package service

import (
	"context"
	"testing"

	"github.com/renterra/rental-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTicket_NoActiveLease(t *testing.T) {
	f := newFixture(t)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)

	_, err := f.maintenanceSvc.File(context.Background(), tenant, TicketInput{Title: "Leaky tap"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestFileTicket_BindsToActiveBookingProperty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	older := f.newProperty(t, landlord, "Old Flat", 9000)
	newer := f.newProperty(t, landlord, "New Flat", 9500)
	f.newApprovedBooking(t, tenant, older)
	f.newApprovedBooking(t, tenant, newer)

	ticket, err := f.maintenanceSvc.File(ctx, tenant, TicketInput{Title: "Leaky tap", Category: models.TicketCategoryPlumbing})
	require.NoError(t, err)
	// Ambiguity resolves to the most recent approved booking.
	assert.Equal(t, newer.ID, ticket.PropertyID)
	assert.Equal(t, models.TicketPending, ticket.Status)
}

func TestFileTicket_DefaultsCategory(t *testing.T) {
	f := newFixture(t)
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	property := f.newProperty(t, landlord, "Flat", 9000)
	f.newApprovedBooking(t, tenant, property)

	ticket, err := f.maintenanceSvc.File(context.Background(), tenant, TicketInput{Title: "Broken latch"})
	require.NoError(t, err)
	assert.Equal(t, models.TicketCategoryOther, ticket.Category)
}

func TestAdvanceTicket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	landlord := f.newUser(t, "owner@example.com", models.RoleLandlord)
	other := f.newUser(t, "other@example.com", models.RoleLandlord)
	tenant := f.newUser(t, "tenant@example.com", models.RoleTenant)
	property := f.newProperty(t, landlord, "Flat", 9000)
	f.newApprovedBooking(t, tenant, property)

	ticket, err := f.maintenanceSvc.File(ctx, tenant, TicketInput{Title: "No power in kitchen", Category: models.TicketCategoryElectrical})
	require.NoError(t, err)

	_, err = f.maintenanceSvc.Advance(ctx, other, ticket.ID, models.TicketInProgress)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.maintenanceSvc.Advance(ctx, landlord, ticket.ID, models.TicketPending)
	assert.ErrorIs(t, err, ErrInvalid)

	progressed, err := f.maintenanceSvc.Advance(ctx, landlord, ticket.ID, models.TicketInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.TicketInProgress, progressed.Status)
	assert.Nil(t, progressed.CompletedAt)

	completed, err := f.maintenanceSvc.Advance(ctx, landlord, ticket.ID, models.TicketCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.TicketCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	// Completed is final.
	_, err = f.maintenanceSvc.Advance(ctx, landlord, ticket.ID, models.TicketInProgress)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
