// Package cmd wires the application together: configuration, adapters, and
// use case handlers.
package cmd

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	httpin "varto/internal/adapters/in/http"
	"varto/internal/adapters/out/kafka"
	"varto/internal/adapters/out/postgres"
	"varto/internal/adapters/out/push"
	"varto/internal/core/application/usecases/commands"
	"varto/internal/core/application/usecases/queries"
	"varto/internal/core/ports"
	"varto/internal/jobs"
	"varto/internal/notifier"
)

// CompositionRoot builds and owns the application's object graph.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	directory  *postgres.GormRecipientDirectory
	dispatcher *notifier.Dispatcher
	publisher  ports.EventPublisher
	producer   *kafka.Producer
	logger     *slog.Logger
}

// NewCompositionRoot constructs the object graph from config. The Kafka
// producer and push gateway are optional; when unconfigured their nop
// counterparts keep the rest of the system working.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  postgres.NewGormRecipientDirectory(gormDB),
		logger:     logger,
	}

	var sender ports.PushSender
	if config.PushGatewayURL != "" {
		client, err := push.NewClient(config.PushGatewayURL, config.PushGatewayAPIKey)
		if err != nil {
			return nil, fmt.Errorf("configure push gateway: %w", err)
		}
		sender = client
	} else {
		sender = push.NewNopSender()
		logger.Warn("push gateway not configured, push delivery disabled")
	}

	if config.KafkaHost != "" {
		producer, err := kafka.NewProducer([]string{config.KafkaHost})
		if err != nil {
			return nil, fmt.Errorf("connect to kafka: %w", err)
		}
		root.producer = producer
		root.publisher = producer
	} else {
		root.publisher = kafka.NewNopPublisher()
		logger.Warn("kafka not configured, event publishing disabled")
	}

	root.dispatcher = notifier.NewDispatcher(root.uowFactory, root.directory, sender, logger)
	return root, nil
}

// Close releases broker connections and waits for in-flight push attempts.
func (c *CompositionRoot) Close() error {
	c.dispatcher.Wait()
	if c.producer != nil {
		return c.producer.Close()
	}
	return nil
}

// Dispatcher returns the notification dispatcher, used by the relay job.
func (c *CompositionRoot) Dispatcher() *notifier.Dispatcher {
	return c.dispatcher
}

// NewJobManager wires the scheduled jobs.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.dispatcher, c.logger)
}

// NewHTTPServer wires the REST facade.
func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	handlers := httpin.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		TransitionOrder:       c.CreateTransitionOrderCommandHandler(),
		AssignCourier:         c.CreateAssignCourierCommandHandler(),
		ReassignCourier:       c.CreateReassignCourierCommandHandler(),
		UpdateOrderDetails:    c.CreateUpdateOrderDetailsCommandHandler(),
		RemoveOrder:           c.CreateRemoveOrderCommandHandler(),
		CreateAppointment:     c.CreateCreateAppointmentCommandHandler(),
		TransitionAppointment: c.CreateTransitionAppointmentCommandHandler(),
		MarkNotificationRead:  c.CreateMarkNotificationReadCommandHandler(),
		GetActiveOrders:       c.CreateGetActiveOrdersQueryHandler(),
		GetNotifications:      c.CreateGetNotificationsQueryHandler(),
	}
	return httpin.NewServer(handlers, c.directory)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderVendorUoWFactory = FuncOrderVendorUoWFactory(func() commands.OrderVendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.dispatcher, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.OrderCourierUoWFactory = FuncOrderCourierUoWFactory(func() commands.OrderCourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.dispatcher, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateReassignCourierCommandHandler() commands.ReassignCourierCommandHandler {
	var f commands.OrderCourierUoWFactory = FuncOrderCourierUoWFactory(func() commands.OrderCourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReassignCourierCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() commands.UpdateOrderDetailsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderDetailsCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAppointmentCommandHandler() commands.CreateAppointmentCommandHandler {
	var f commands.AppointmentUoWFactory = FuncAppointmentUoWFactory(func() commands.AppointmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAppointmentCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateTransitionAppointmentCommandHandler() commands.TransitionAppointmentCommandHandler {
	var f commands.AppointmentUoWFactory = FuncAppointmentUoWFactory(func() commands.AppointmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionAppointmentCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderCourierUoWFactory func() commands.OrderCourierUoW

func (f FuncOrderCourierUoWFactory) Create() commands.OrderCourierUoW {
	return f()
}

type FuncOrderVendorUoWFactory func() commands.OrderVendorUoW

func (f FuncOrderVendorUoWFactory) Create() commands.OrderVendorUoW {
	return f()
}

type FuncAppointmentUoWFactory func() commands.AppointmentUoW

func (f FuncAppointmentUoWFactory) Create() commands.AppointmentUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
