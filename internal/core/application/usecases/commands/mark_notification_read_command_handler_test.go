package commands_test

import (
	"testing"

	"varto/internal/core/application/usecases/commands"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/notification"
	"varto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomerNotification(t *testing.T, recipientID kernel.UUID) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(kernel.NewUUID(), notification.TypeSystem,
		kernel.RoleCustomer, recipientID, "Welcome", "Your account is ready.", nil, nil)
	require.NoError(t, err)
	return n
}

func TestMarkNotificationReadCommandHandler_Handle_Recipient(t *testing.T) {
	ctx := t.Context()

	recipientID := kernel.NewUUID()
	n := newCustomerNotification(t, recipientID)
	cmd, err := commands.NewMarkNotificationReadCommand(n.ID(),
		actorWithID(t, kernel.RoleCustomer, recipientID))
	require.NoError(t, err)

	repo := new(MockNotificationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Get", ctx, n.ID()).Return(n, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.True(t, n.IsRead())
	repo.AssertExpectations(t)
}

func TestMarkNotificationReadCommandHandler_Handle_StrangerDenied(t *testing.T) {
	ctx := t.Context()

	n := newCustomerNotification(t, kernel.NewUUID())
	cmd, err := commands.NewMarkNotificationReadCommand(n.ID(),
		actorAs(t, kernel.RoleCustomer))
	require.NoError(t, err)

	repo := new(MockNotificationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Get", ctx, n.ID()).Return(n, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.False(t, n.IsRead())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkNotificationReadCommandHandler_Handle_AdminAllowed(t *testing.T) {
	ctx := t.Context()

	n := newCustomerNotification(t, kernel.NewUUID())
	cmd, err := commands.NewMarkNotificationReadCommand(n.ID(), actorAs(t, kernel.RoleAdmin))
	require.NoError(t, err)

	repo := new(MockNotificationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Get", ctx, n.ID()).Return(n, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	assert.True(t, n.IsRead())
}
