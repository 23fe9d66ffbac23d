package commands_test

import (
	"testing"

	"varto/internal/core/application/usecases/commands"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/order"
	"varto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Ready)
	testCourier := newTestCourier(t)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), testCourier.ID(), vendor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		courierRepo.On("GetForUpdate", ctx, testCourier.ID()).Return(testCourier, nil).Once(),
		orderRepo.On("HasActiveByCourier", ctx, testCourier.ID()).Return(false, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	publisher := new(MockPublisher)
	handler := commands.NewAssignCourierCommandHandler(factory, dispatcher, publisher, testLogger())

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Assigned, testOrder.Status())
	assert.True(t, testOrder.IsAssignedTo(testCourier.ID()))
	require.NotNil(t, updated, "the committed order comes back to the caller")
	assert.Equal(t, order.Assigned, updated.Status())
	assert.True(t, updated.IsAssignedTo(testCourier.ID()))

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "ready", publisher.events[0].FromStatus)
	assert.Equal(t, "assigned", publisher.events[0].ToStatus)

	// courier and customer
	assert.ElementsMatch(t,
		[]kernel.Role{kernel.RoleCourier, kernel.RoleCustomer},
		dispatcher.recipients())

	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_CourierBusy(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Ready)
	testCourier := newTestCourier(t)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), testCourier.ID(), vendor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		courierRepo.On("GetForUpdate", ctx, testCourier.ID()).Return(testCourier, nil).Once(),
		orderRepo.On("HasActiveByCourier", ctx, testCourier.ID()).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	publisher := new(MockPublisher)
	handler := commands.NewAssignCourierCommandHandler(factory, dispatcher, publisher, testLogger())

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrCourierBusy)
	assert.Equal(t, order.Ready, testOrder.Status())
	assert.Nil(t, testOrder.CourierID())
	assert.Empty(t, publisher.events)
	assert.Empty(t, dispatcher.dispatched)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignCourierCommandHandler_Handle_UnavailableCourier(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Ready)
	testCourier := newTestCourier(t)
	testCourier.SetAvailability(false)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), testCourier.ID(), vendor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		courierRepo.On("GetForUpdate", ctx, testCourier.ID()).Return(testCourier, nil).Once(),
		orderRepo.On("HasActiveByCourier", ctx, testCourier.ID()).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, new(MockDispatcher),
		new(MockPublisher), testLogger())

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, testOrder.CourierID())
}

func TestAssignCourierCommandHandler_Handle_OrderNotReady(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Pending)
	testCourier := newTestCourier(t)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())

	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), testCourier.ID(), vendor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		courierRepo.On("GetForUpdate", ctx, testCourier.ID()).Return(testCourier, nil).Once(),
		orderRepo.On("HasActiveByCourier", ctx, testCourier.ID()).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, new(MockDispatcher),
		new(MockPublisher), testLogger())

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestAssignCourierCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderCourierUoWFactory)
	handler := commands.NewAssignCourierCommandHandler(factory, new(MockDispatcher),
		new(MockPublisher), testLogger())

	_, err := handler.Handle(t.Context(), commands.AssignCourierCommand{})

	require.ErrorIs(t, err, commands.ErrAssignCourierCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
