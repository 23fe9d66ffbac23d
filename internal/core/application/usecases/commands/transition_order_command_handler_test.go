package commands_test

import (
	"errors"
	"testing"

	"varto/internal/core/application/usecases/commands"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/notification"
	"varto/internal/core/domain/model/order"
	"varto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransitionHandler(
	factory *MockOrderUoWFactory,
	dispatcher *MockDispatcher,
	publisher *MockPublisher,
) commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(factory, dispatcher, publisher, testLogger())
}

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Pending)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.Confirmed, vendor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	publisher := new(MockPublisher)

	updated, err := newTransitionHandler(factory, dispatcher, publisher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, testOrder.Status())
	require.NotNil(t, updated, "the committed order comes back to the caller")
	assert.Equal(t, order.Confirmed, updated.Status())
	assert.True(t, updated.ID().IsEqual(testOrder.ID()))

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "pending", publisher.events[0].FromStatus)
	assert.Equal(t, "confirmed", publisher.events[0].ToStatus)

	require.Len(t, dispatcher.dispatched, 1)
	assert.Equal(t, kernel.RoleCustomer, dispatcher.dispatched[0].RecipientRole())
	assert.Equal(t, notification.TypeOrder, dispatcher.dispatched[0].Type())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockOrderUoWFactory)
	handler := newTransitionHandler(factory, new(MockDispatcher), new(MockPublisher))

	_, err := handler.Handle(ctx, commands.TransitionOrderCommand{})

	require.ErrorIs(t, err, commands.ErrTransitionOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestTransitionOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderCommand(orderID, order.Confirmed,
		actorAs(t, kernel.RoleVendor))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	_, err = newTransitionHandler(factory, dispatcher, new(MockPublisher)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, dispatcher.dispatched)
}

func TestTransitionOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Pending)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.Delivered, vendor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	publisher := new(MockPublisher)
	_, err = newTransitionHandler(factory, dispatcher, publisher).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, testOrder.Status())
	assert.Empty(t, publisher.events)
	assert.Empty(t, dispatcher.dispatched)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Ready)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())
	assignedCourier := kernel.NewUUID()
	require.NoError(t, testOrder.Assign(assignedCourier, vendor))

	stranger := actorAs(t, kernel.RoleCourier)
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.Accepted, stranger)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = newTransitionHandler(factory, new(MockDispatcher), new(MockPublisher)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, order.Assigned, testOrder.Status())
}

func TestTransitionOrderCommandHandler_Handle_CancelNotifiesEveryone(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Ready)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())
	courierID := kernel.NewUUID()
	require.NoError(t, testOrder.Assign(courierID, vendor))

	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.Cancelled, vendor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	updated, err := newTransitionHandler(factory, dispatcher, new(MockPublisher)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, testOrder.CourierID(), "cancellation releases the courier")
	require.NotNil(t, updated)
	assert.Nil(t, updated.CourierID())

	// vendor, customer, and the released courier all hear about it
	assert.ElementsMatch(t,
		[]kernel.Role{kernel.RoleVendor, kernel.RoleCustomer, kernel.RoleCourier},
		dispatcher.recipients())
	for _, n := range dispatcher.dispatched {
		if n.RecipientRole() == kernel.RoleCourier {
			assert.True(t, n.RecipientID().IsEqual(courierID))
		}
	}
}

func TestTransitionOrderCommandHandler_Handle_PublisherFailureIsTolerated(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Pending)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.Confirmed, vendor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	publisher := &MockPublisher{err: errors.New("broker unreachable")}

	_, err = newTransitionHandler(factory, dispatcher, publisher).Handle(ctx, cmd)

	require.NoError(t, err, "broker failure must not surface")
	require.Len(t, dispatcher.dispatched, 1)
}

func TestTransitionOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t, order.Pending)
	vendor := actorWithID(t, kernel.RoleVendor, testOrder.VendorID())
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.Confirmed, vendor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	publisher := new(MockPublisher)
	_, err = newTransitionHandler(factory, dispatcher, publisher).Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	assert.Empty(t, publisher.events, "nothing goes out without a commit")
	assert.Empty(t, dispatcher.dispatched)
}

func TestNewTransitionOrderCommand_RejectsBadInput(t *testing.T) {
	valid := actorAs(t, kernel.RoleVendor)

	_, err := commands.NewTransitionOrderCommand(kernel.UUID{}, order.Confirmed, valid)
	require.Error(t, err)

	_, err = commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Unknown, valid)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Confirmed, kernel.Actor{})
	require.Error(t, err)
}
