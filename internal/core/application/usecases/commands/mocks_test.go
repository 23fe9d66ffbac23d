package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"varto/internal/core/application/usecases/commands"
	"varto/internal/core/domain/model/appointment"
	"varto/internal/core/domain/model/courier"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/notification"
	"varto/internal/core/domain/model/order"
	"varto/internal/core/domain/model/vendors"
	"varto/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActiveByVendor(ctx context.Context, vendorID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) HasActiveByCourier(ctx context.Context, courierID kernel.UUID) (bool, error) {
	args := m.Called(ctx, courierID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Add(ctx context.Context, v *vendors.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, v *vendors.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendors.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendors.Vendor), args.Error(1)
}

type MockAppointmentRepository struct{ mock.Mock }

func (m *MockAppointmentRepository) Add(ctx context.Context, a *appointment.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointment.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointment.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*appointment.Appointment, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*appointment.Appointment), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetAllByRecipient(ctx context.Context, role kernel.Role, recipientID kernel.UUID) ([]*notification.Notification, error) {
	args := m.Called(ctx, role, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetAllPushPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

// MockUoW satisfies every command UoW interface; handlers only see the
// subset they declare.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

func (m *MockUoW) AppointmentRepository() ports.AppointmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AppointmentRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderCourierUoWFactory struct{ mock.Mock }

func (m *MockOrderCourierUoWFactory) Create() commands.OrderCourierUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCourierUoW)
}

type MockOrderVendorUoWFactory struct{ mock.Mock }

func (m *MockOrderVendorUoWFactory) Create() commands.OrderVendorUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderVendorUoW)
}

type MockAppointmentUoWFactory struct{ mock.Mock }

func (m *MockAppointmentUoWFactory) Create() commands.AppointmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AppointmentUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

// MockDispatcher records dispatched notifications for assertions on the
// notification matrix.
type MockDispatcher struct {
	dispatched []*notification.Notification
}

func (m *MockDispatcher) Dispatch(_ context.Context, n *notification.Notification) {
	m.dispatched = append(m.dispatched, n)
}

func (m *MockDispatcher) recipients() []kernel.Role {
	roles := make([]kernel.Role, 0, len(m.dispatched))
	for _, n := range m.dispatched {
		roles = append(roles, n.RecipientRole())
	}
	return roles
}

type MockPublisher struct {
	events []ports.OrderStatusChangedEvent
	err    error
}

func (m *MockPublisher) PublishOrderStatusChanged(_ context.Context, event ports.OrderStatusChangedEvent) error {
	m.events = append(m.events, event)
	return m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func actorAs(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(role, kernel.NewUUID())
	require.NoError(t, err)
	return actor
}

func actorWithID(t *testing.T, role kernel.Role, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(role, id)
	require.NoError(t, err)
	return actor
}

// newTestOrder builds an order walked to the given status. The customer is
// always present so customer notifications can be asserted.
func newTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	address, err := kernel.NewAddress("Moda Cd. 41", "Kadikoy", "Istanbul", "ring twice")
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), "adana durum", 1, mustMoney(t, "150.00"), "")
	require.NoError(t, err)

	customerID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address,
		[]*order.Item{item}, order.Details{
			CustomerID:    &customerID,
			CustomerPhone: "+90 555 000 0002",
			DeliveryFee:   mustMoney(t, "25.00"),
			PaymentMethod: order.PaymentIBAN,
			IBANInfo:      "TR33 0006 1005 1978 6457 8413 26",
		})
	require.NoError(t, err)

	vendor := actorWithID(t, kernel.RoleVendor, o.VendorID())
	path := []order.Status{order.Confirmed, order.Preparing, order.Ready}
	for _, s := range path {
		if o.Status() == status {
			return o
		}
		require.NoError(t, o.TransitionTo(s, vendor))
	}
	require.Equal(t, status, o.Status(), "newTestOrder supports statuses up to ready")
	return o
}

func newTestCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Deniz", "+90 555 333 4455",
		courier.VehicleBicycle)
	require.NoError(t, err)
	return c
}

func newTestVendor(t *testing.T, id kernel.UUID) *vendors.Vendor {
	t.Helper()
	v, err := vendors.NewVendor(id, "Meshur Kokorec", "food", "+90 212 555 0101",
		"TR33 0006 1005 1978 6457 8413 26")
	require.NoError(t, err)
	return v
}
