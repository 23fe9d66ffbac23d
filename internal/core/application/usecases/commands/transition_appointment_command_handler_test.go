package commands_test

import (
	"testing"
	"time"

	"varto/internal/core/application/usecases/commands"
	"varto/internal/core/domain/model/appointment"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingAppointment(t *testing.T) *appointment.Appointment {
	t.Helper()
	a, err := appointment.NewAppointment(kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), time.Now().Add(72*time.Hour), 60, "")
	require.NoError(t, err)
	return a
}

func TestTransitionAppointmentCommandHandler_Handle_Confirm(t *testing.T) {
	ctx := t.Context()

	appt := newPendingAppointment(t)
	vendor := actorWithID(t, kernel.RoleVendor, appt.VendorID())
	cmd, err := commands.NewTransitionAppointmentCommand(appt.ID(), appointment.Confirmed, vendor, "")
	require.NoError(t, err)

	apptRepo := new(MockAppointmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AppointmentRepository").Return(apptRepo).Once(),
		apptRepo.On("GetForUpdate", ctx, appt.ID()).Return(appt, nil).Once(),
		apptRepo.On("Update", ctx, mock.AnythingOfType("*appointment.Appointment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAppointmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	handler := commands.NewTransitionAppointmentCommandHandler(factory, dispatcher)

	updated, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, appointment.Confirmed, appt.Status())
	require.NotNil(t, updated, "the committed appointment comes back to the caller")
	assert.Equal(t, appointment.Confirmed, updated.Status())

	require.Len(t, dispatcher.dispatched, 1)
	n := dispatcher.dispatched[0]
	assert.Equal(t, kernel.RoleCustomer, n.RecipientRole())
	assert.True(t, n.RecipientID().IsEqual(appt.CustomerID()))
	assert.Contains(t, n.Message(), "60 min", "confirmation carries the slot")
}

func TestTransitionAppointmentCommandHandler_Handle_RejectWithReason(t *testing.T) {
	ctx := t.Context()

	appt := newPendingAppointment(t)
	vendor := actorWithID(t, kernel.RoleVendor, appt.VendorID())
	cmd, err := commands.NewTransitionAppointmentCommand(appt.ID(), appointment.Rejected,
		vendor, "fully booked")
	require.NoError(t, err)

	apptRepo := new(MockAppointmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AppointmentRepository").Return(apptRepo).Once(),
		apptRepo.On("GetForUpdate", ctx, appt.ID()).Return(appt, nil).Once(),
		apptRepo.On("Update", ctx, mock.AnythingOfType("*appointment.Appointment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAppointmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	handler := commands.NewTransitionAppointmentCommandHandler(factory, dispatcher)

	_, err = handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, appointment.Rejected, appt.Status())
	require.NotNil(t, appt.RejectionReason())
	assert.Equal(t, "fully booked", *appt.RejectionReason())

	require.Len(t, dispatcher.dispatched, 1)
	assert.Contains(t, dispatcher.dispatched[0].Message(), "fully booked")
}

func TestTransitionAppointmentCommandHandler_Handle_CustomerCannotConfirm(t *testing.T) {
	ctx := t.Context()

	appt := newPendingAppointment(t)
	customer := actorWithID(t, kernel.RoleCustomer, appt.CustomerID())
	cmd, err := commands.NewTransitionAppointmentCommand(appt.ID(), appointment.Confirmed, customer, "")
	require.NoError(t, err)

	apptRepo := new(MockAppointmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AppointmentRepository").Return(apptRepo).Once(),
		apptRepo.On("GetForUpdate", ctx, appt.ID()).Return(appt, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAppointmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	handler := commands.NewTransitionAppointmentCommandHandler(factory, dispatcher)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, appointment.Pending, appt.Status())
	assert.Empty(t, dispatcher.dispatched)
}

func TestNewTransitionAppointmentCommand_RejectionNeedsReason(t *testing.T) {
	vendor := actorAs(t, kernel.RoleVendor)

	_, err := commands.NewTransitionAppointmentCommand(kernel.NewUUID(),
		appointment.Rejected, vendor, "  ")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
